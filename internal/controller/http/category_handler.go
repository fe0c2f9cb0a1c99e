package http

import (
	"net/http"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/usecase"
	"ink-press/pkg/logger"
	"ink-press/pkg/wordcount"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

type UpsertCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type CategoryResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	IsActive            bool      `json:"is_active"`
	PublishedPostsCount int64     `json:"published_posts_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type PublishedPostResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	WordCount   int       `json:"word_count"`
}

type CategoryDetailResponse struct {
	CategoryResponse
	PublishedPosts []PublishedPostResponse `json:"published_posts"`
}

func toCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:                  category.ID,
		Name:                category.Name,
		IsActive:            category.IsActive,
		PublishedPostsCount: category.PublishedPostsCount,
		CreatedAt:           category.CreatedAt,
		UpdatedAt:           category.UpdatedAt,
	}
}

func toCategoryDetailResponse(category *entity.Category) CategoryDetailResponse {
	posts := make([]PublishedPostResponse, len(category.Posts))
	for i, post := range category.Posts {
		posts[i] = PublishedPostResponse{
			ID:          post.ID,
			Name:        post.Name,
			PublishedAt: post.PublishedAt,
			WordCount:   wordcount.Count(post.Content),
		}
	}

	return CategoryDetailResponse{
		CategoryResponse: toCategoryResponse(category),
		PublishedPosts:   posts,
	}
}

// ListCategories godoc
// @Summary      List categories
// @Description  Get all active categories with their published post counts
// @Tags         categories
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUseCase.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = toCategoryResponse(category)
	}

	c.JSON(http.StatusOK, gin.H{"categories": response})
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Create a category with a unique name
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body UpsertCategoryRequest true "Category fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	category, err := h.categoryUseCase.CreateCategory(usecase.CategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"category": toCategoryResponse(category),
	})
}

// GetCategory godoc
// @Summary      Get category by ID
// @Description  Get a category with its currently published posts
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryUseCase.GetCategory(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": toCategoryDetailResponse(category)})
}

// UpdateCategory godoc
// @Summary      Update a category
// @Description  Update a category; renaming it to its own current name is allowed
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        category body UpsertCategoryRequest true "Category fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req UpsertCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Param("id"), usecase.CategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"category": toCategoryResponse(category),
	})
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Delete a category and its associations; posts are left intact
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUseCase.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
