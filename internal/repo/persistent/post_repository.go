package persistent

import (
	"errors"
	"fmt"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	List(now time.Time) ([]*entity.Post, error)
	GetByID(id string) (*entity.Post, error)
	Create(post *entity.Post, categoryIDs []string) error
	Update(post *entity.Post, categoryIDs []string) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns posts published at or before now, newest first.
func (r *postRepository) List(now time.Time) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.
		Where("published_at <= ?", now).
		Order("published_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// GetByID returns the post with its categories regardless of publish state.
// Publish gating is the caller's concern.
func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Preload("Categories").
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return ToPostEntity(&postModel), nil
}

// Create inserts the post and one association row per category id as a single
// transaction; a failure at any step leaves no rows behind.
func (r *postRepository) Create(post *entity.Post, categoryIDs []string) error {
	postModel := ToPostModel(post)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(postModel).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		categoryModels, err := loadCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		if len(categoryModels) > 0 {
			if err := tx.Model(postModel).Association("Categories").Append(&categoryModels); err != nil {
				return fmt.Errorf("failed to attach categories: %w", err)
			}
		}

		postModel.Categories = categoryModels
		*post = *ToPostEntity(postModel)
		return nil
	})
}

// Update saves the post fields and atomically replaces its category set with
// exactly the supplied ids. Prior associations never survive an update.
func (r *postRepository) Update(post *entity.Post, categoryIDs []string) error {
	postModel := ToPostModel(post)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(postModel).Error; err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		categoryModels, err := loadCategories(tx, categoryIDs)
		if err != nil {
			return err
		}
		if err := tx.Model(postModel).Association("Categories").Replace(&categoryModels); err != nil {
			return fmt.Errorf("failed to replace categories: %w", err)
		}

		postModel.Categories = categoryModels
		*post = *ToPostEntity(postModel)
		return nil
	})
}

// Delete removes the post and its association rows in one transaction.
// Associated categories are left intact.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		postModel := model.PostModel{ID: id}
		if err := tx.Model(&postModel).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("failed to clear post associations: %w", err)
		}

		result := tx.Delete(&model.PostModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return entity.ErrPostNotFound
		}
		return nil
	})
}

// loadCategories fetches the referenced categories inside the transaction so a
// concurrently deleted category aborts the whole write instead of leaving a
// dangling association row.
func loadCategories(tx *gorm.DB, categoryIDs []string) ([]model.CategoryModel, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}

	var categoryModels []model.CategoryModel
	if err := tx.Where("id IN ?", categoryIDs).Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categoryModels) != len(categoryIDs) {
		verr := entity.NewValidationError()
		verr.Add("categories", "The selected categories is invalid.")
		return nil, verr
	}
	return categoryModels, nil
}
