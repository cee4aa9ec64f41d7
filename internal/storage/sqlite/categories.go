package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mmynk/contactbook/internal/models"
)

// ListCategories returns all categories ordered by ID.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID with its subcategories ordered by ID.
func (s *SQLiteStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&category, id).Error
	if err != nil {
		return nil, notFound(err, "category", id)
	}
	return &category, nil
}

// CreateSubcategory inserts a new subcategory.
func (s *SQLiteStore) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}
