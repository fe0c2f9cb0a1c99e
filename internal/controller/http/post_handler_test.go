package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/usecase"
	"ink-press/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of usecase.PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(input usecase.PostInput) (*entity.Post, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(id string, input usecase.PostInput) (*entity.Post, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func TestListPosts(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	posts := []*entity.Post{
		{ID: "post-2", Name: "Newer", Content: "hola hola hola", PublishedAt: time.Now().Add(-time.Hour)},
		{ID: "post-1", Name: "Older", Content: "hola", PublishedAt: time.Now().Add(-2 * time.Hour)},
	}
	mockUseCase.On("ListPosts").Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Posts []PostResponse `json:"posts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Posts, 2)
	assert.Equal(t, "post-2", body.Posts[0].ID)
	assert.Equal(t, 3, body.Posts[0].WordCount)
	assert.Equal(t, 1, body.Posts[1].WordCount)
}

func TestListPosts_Empty(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	mockUseCase.On("ListPosts").Return([]*entity.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[]}`, w.Body.String())
}

func TestCreatePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	created := &entity.Post{
		ID:          "post-1",
		Name:        "Post de prueba 1",
		Content:     "Lorem ipsum dolor sit amet",
		PublishedAt: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Categories:  []entity.Category{{ID: "cat-1", Name: "Tech"}},
	}
	mockUseCase.On("CreatePost", mock.AnythingOfType("usecase.PostInput")).Return(created, nil)

	payload := bytes.NewBufferString(`{
		"name": "Post de prueba 1",
		"content": "Lorem ipsum dolor sit amet",
		"published_at": "2026-08-31",
		"categories": ["cat-1"]
	}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Post PostResponse `json:"post"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "post-1", body.Post.ID)
	assert.Equal(t, 5, body.Post.WordCount)
	assert.Len(t, body.Post.Categories, 1)
	assert.Equal(t, "Tech", body.Post.Categories[0].Name)
}

func TestCreatePost_ValidationError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	verr := entity.NewValidationError()
	verr.Add("content", "The content must be at least 10 characters.")
	verr.Add("categories", "The selected categories is invalid.")
	mockUseCase.On("CreatePost", mock.AnythingOfType("usecase.PostInput")).Return(nil, verr)

	payload := bytes.NewBufferString(`{"name":"A","content":"Lor","published_at":"2026-08-31","categories":["ghost"]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "content")
	assert.Contains(t, body.Errors, "categories")
}

func TestGetPost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	post := &entity.Post{
		ID:          "post-1",
		Name:        "A",
		Content:     "hola hola",
		PublishedAt: time.Now().Add(-time.Hour),
		Categories:  []entity.Category{{ID: "cat-1", Name: "Tech"}},
	}
	mockUseCase.On("GetPost", "post-1").Return(post, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Post PostResponse `json:"post"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Post.WordCount)
	assert.Len(t, body.Post.Categories, 1)
}

func TestGetPost_FutureDatedLooksAbsent(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id", handler.GetPost)

	// Scheduled posts surface the same way as missing ones.
	mockUseCase.On("GetPost", "post-1").Return(nil, entity.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.UpdatePost)

	updated := &entity.Post{
		ID:          "post-1",
		Name:        "Renamed",
		Content:     "Lorem ipsum dolor sit amet",
		PublishedAt: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	mockUseCase.On("UpdatePost", "post-1", mock.AnythingOfType("usecase.PostInput")).Return(updated, nil)

	payload := bytes.NewBufferString(`{
		"name": "Renamed",
		"content": "Lorem ipsum dolor sit amet",
		"published_at": "2026-08-31",
		"categories": []
	}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/posts/post-1", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Post PostResponse `json:"post"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Renamed", body.Post.Name)
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.UpdatePost)

	mockUseCase.On("UpdatePost", "missing", mock.AnythingOfType("usecase.PostInput")).Return(nil, entity.ErrPostNotFound)

	payload := bytes.NewBufferString(`{"name":"A","content":"Lorem ipsum dolor","published_at":"2026-08-31","categories":[]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/posts/missing", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", handler.DeletePost)

	mockUseCase.On("DeletePost", "post-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}

func TestDeletePost_RepeatDeleteFails(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", handler.DeletePost)

	mockUseCase.On("DeletePost", "post-1").Return(nil).Once()
	mockUseCase.On("DeletePost", "post-1").Return(entity.ErrPostNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
