package persistent

import (
	"errors"
	"fmt"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(now time.Time) ([]*entity.Category, error)
	GetByID(id string, now time.Time) (*entity.Category, error)
	NameTaken(name, excludeID string) (bool, error)
	CountByIDs(ids []string) (int64, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns active categories, each with the count of associated posts
// published at or before now.
func (r *categoryRepository) List(now time.Time) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Where("is_active = ?", true).Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	type countRow struct {
		CategoryID string
		Count      int64
	}
	var rows []countRow
	err := r.db.Table("category_post").
		Select("category_post.category_id AS category_id, COUNT(*) AS count").
		Joins("JOIN posts ON posts.id = category_post.post_id").
		Where("posts.published_at <= ?", now).
		Group("category_post.category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count published posts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
		categories[i].PublishedPostsCount = counts[categoryModels[i].ID]
	}
	return categories, nil
}

// GetByID returns the category with its posts published at or before now.
func (r *categoryRepository) GetByID(id string, now time.Time) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.
		Preload("Posts", "published_at <= ?", now).
		Where("id = ?", id).
		First(&categoryModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return ToCategoryEntity(&categoryModel), nil
}

// NameTaken reports whether another category already uses name. The record
// identified by excludeID is ignored so updates may keep their own name.
func (r *categoryRepository) NameTaken(name, excludeID string) (bool, error) {
	query := r.db.Model(&model.CategoryModel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRepository) CountByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.Model(&model.CategoryModel{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Create(categoryModel).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) Update(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Save(categoryModel).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

// Delete removes the category and its association rows in one transaction.
// Associated posts are left intact.
func (r *categoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		categoryModel := model.CategoryModel{ID: id}
		if err := tx.Model(&categoryModel).Association("Posts").Clear(); err != nil {
			return fmt.Errorf("failed to clear category associations: %w", err)
		}

		result := tx.Delete(&model.CategoryModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return entity.ErrCategoryNotFound
		}
		return nil
	})
}
