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

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type UpsertPostRequest struct {
	Name        *string  `json:"name"`
	Content     *string  `json:"content"`
	PublishedAt *string  `json:"published_at"`
	Categories  []string `json:"categories"`
}

type PostCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PostResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Content     string                 `json:"content"`
	PublishedAt time.Time              `json:"published_at"`
	WordCount   int                    `json:"word_count"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Categories  []PostCategoryResponse `json:"categories,omitempty"`
}

func toPostResponse(post *entity.Post) PostResponse {
	response := PostResponse{
		ID:          post.ID,
		Name:        post.Name,
		Content:     post.Content,
		PublishedAt: post.PublishedAt,
		WordCount:   wordcount.Count(post.Content),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}

	if len(post.Categories) > 0 {
		response.Categories = make([]PostCategoryResponse, len(post.Categories))
		for i, category := range post.Categories {
			response.Categories[i] = PostCategoryResponse{
				ID:   category.ID,
				Name: category.Name,
			}
		}
	}

	return response
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get published posts ordered by publish date, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	response := make([]PostResponse, len(posts))
	for i, post := range posts {
		response[i] = toPostResponse(post)
	}

	c.JSON(http.StatusOK, gin.H{"posts": response})
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post and attach it to the given categories atomically
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        post body UpsertPostRequest true "Post fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req UpsertPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	post, err := h.postUseCase.CreatePost(usecase.PostInput{
		Name:        req.Name,
		Content:     req.Content,
		PublishedAt: req.PublishedAt,
		CategoryIDs: req.Categories,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": toPostResponse(post)})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a published post with its categories; future-dated posts return 404
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": toPostResponse(post)})
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Update a post; its category set is fully replaced by the given list
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        post body UpsertPostRequest true "Post fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpsertPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Param("id"), usecase.PostInput{
		Name:        req.Name,
		Content:     req.Content,
		PublishedAt: req.PublishedAt,
		CategoryIDs: req.Categories,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": toPostResponse(post)})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and its associations; categories are left intact
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
