package service

import (
	"context"

	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/storage"
)

// CategoryService exposes the category tree.
type CategoryService struct {
	store storage.Store
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// ListSubcategories returns the subcategories of category id, or a not-found
// error if the category does not exist.
func (s *CategoryService) ListSubcategories(ctx context.Context, id uint) ([]models.Subcategory, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if category.Subcategories == nil {
		return []models.Subcategory{}, nil
	}
	return category.Subcategories, nil
}
