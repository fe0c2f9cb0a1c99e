package usecase

import (
	"fmt"
	"time"

	"ink-press/internal/entity"
	"ink-press/internal/repo/persistent"
)

// CategoryInput carries the writable category fields. Pointer fields
// distinguish a missing field from a zero value.
type CategoryInput struct {
	Name     *string
	IsActive *bool
}

type CategoryUseCase interface {
	ListCategories() ([]*entity.Category, error)
	CreateCategory(input CategoryInput) (*entity.Category, error)
	GetCategory(id string) (*entity.Category, error)
	UpdateCategory(id string, input CategoryInput) (*entity.Category, error)
	DeleteCategory(id string) error
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository) CategoryUseCase {
	return &categoryUseCase{categoryRepo: categoryRepo}
}

func (uc *categoryUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.List(time.Now())
}

func (uc *categoryUseCase) CreateCategory(input CategoryInput) (*entity.Category, error) {
	if err := uc.validate(input, ""); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:     *input.Name,
		IsActive: *input.IsActive,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) GetCategory(id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(id, time.Now())
}

func (uc *categoryUseCase) UpdateCategory(id string, input CategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id, time.Now())
	if err != nil {
		return nil, err
	}

	// Uniqueness excludes the record being updated: renaming a category to
	// its own current name must not fail.
	if err := uc.validate(input, category.ID); err != nil {
		return nil, err
	}

	category.Name = *input.Name
	category.IsActive = *input.IsActive
	category.Posts = nil
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(id string) error {
	return uc.categoryRepo.Delete(id)
}

func (uc *categoryUseCase) validate(input CategoryInput, excludeID string) error {
	verr := entity.NewValidationError()

	if input.Name == nil || *input.Name == "" {
		verr.Add("name", "The name field is required.")
	} else {
		taken, err := uc.categoryRepo.NameTaken(*input.Name, excludeID)
		if err != nil {
			return fmt.Errorf("failed to validate category name: %w", err)
		}
		if taken {
			verr.Add("name", "The name has already been taken.")
		}
	}

	if input.IsActive == nil {
		verr.Add("is_active", "The is_active field is required.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
