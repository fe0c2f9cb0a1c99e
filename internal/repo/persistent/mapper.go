package persistent

import (
	"ink-press/internal/entity"
	"ink-press/internal/model"
)

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	category := &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Posts) > 0 {
		category.Posts = make([]entity.Post, len(m.Posts))
		for i := range m.Posts {
			category.Posts[i] = *ToPostEntity(&m.Posts[i])
		}
	}

	return category
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        e.ID,
		Name:      e.Name,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		Name:        m.Name,
		Content:     m.Content,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Categories) > 0 {
		post.Categories = make([]entity.Category, len(m.Categories))
		for i := range m.Categories {
			post.Categories[i] = *ToCategoryEntity(&m.Categories[i])
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Name:        e.Name,
		Content:     e.Content,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
