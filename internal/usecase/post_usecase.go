package usecase

import (
	"fmt"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/repo/persistent"
)

// publishedAtLayouts are the accepted input formats for published_at.
var publishedAtLayouts = []string{"2006-01-02", time.RFC3339}

// PostInput carries the writable post fields. Pointer fields distinguish a
// missing field from a zero value. CategoryIDs replaces the post's category
// set wholesale; an empty list detaches every category.
type PostInput struct {
	Name        *string
	Content     *string
	PublishedAt *string
	CategoryIDs []string
}

type PostUseCase interface {
	ListPosts() ([]*entity.Post, error)
	CreatePost(input PostInput) (*entity.Post, error)
	GetPost(id string) (*entity.Post, error)
	UpdatePost(id string, input PostInput) (*entity.Post, error)
	DeletePost(id string) error
}

type postUseCase struct {
	postRepo      persistent.PostRepository
	categoryRepo  persistent.CategoryRepository
	contentMinLen int
}

func NewPostUseCase(postRepo persistent.PostRepository, categoryRepo persistent.CategoryRepository, contentMinLen int) PostUseCase {
	return &postUseCase{
		postRepo:      postRepo,
		categoryRepo:  categoryRepo,
		contentMinLen: contentMinLen,
	}
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List(time.Now())
}

func (uc *postUseCase) CreatePost(input PostInput) (*entity.Post, error) {
	publishedAt, categoryIDs, err := uc.validate(input)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Name:        *input.Name,
		Content:     *input.Content,
		PublishedAt: publishedAt,
	}
	if err := uc.postRepo.Create(post, categoryIDs); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost hides future-dated posts: a post scheduled for later is
// indistinguishable from a missing one on this read path.
func (uc *postUseCase) GetPost(id string) (*entity.Post, error) {
	now := time.Now()

	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.Published(now) {
		return nil, entity.ErrPostNotFound
	}
	return post, nil
}

func (uc *postUseCase) UpdatePost(id string, input PostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	publishedAt, categoryIDs, err := uc.validate(input)
	if err != nil {
		return nil, err
	}

	post.Name = *input.Name
	post.Content = *input.Content
	post.PublishedAt = publishedAt
	post.Categories = nil
	if err := uc.postRepo.Update(post, categoryIDs); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) DeletePost(id string) error {
	return uc.postRepo.Delete(id)
}

func (uc *postUseCase) validate(input PostInput) (time.Time, []string, error) {
	verr := entity.NewValidationError()

	if input.Name == nil || *input.Name == "" {
		verr.Add("name", "The name field is required.")
	}

	if input.Content == nil || *input.Content == "" {
		verr.Add("content", "The content field is required.")
	} else if len(*input.Content) < uc.contentMinLen {
		verr.Add("content", fmt.Sprintf("The content must be at least %d characters.", uc.contentMinLen))
	}

	var publishedAt time.Time
	if input.PublishedAt == nil || *input.PublishedAt == "" {
		verr.Add("published_at", "The published_at field is required.")
	} else {
		parsed, err := parsePublishedAt(*input.PublishedAt)
		if err != nil {
			verr.Add("published_at", "The published_at is not a valid date.")
		} else {
			publishedAt = parsed
		}
	}

	categoryIDs := dedupe(input.CategoryIDs)
	if len(categoryIDs) > 0 {
		count, err := uc.categoryRepo.CountByIDs(categoryIDs)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("failed to validate categories: %w", err)
		}
		if count != int64(len(categoryIDs)) {
			verr.Add("categories", "The selected categories is invalid.")
		}
	}

	if verr.HasErrors() {
		return time.Time{}, nil, verr
	}
	return publishedAt, categoryIDs, nil
}

func parsePublishedAt(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range publishedAtLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
