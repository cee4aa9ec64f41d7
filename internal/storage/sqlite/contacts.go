package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/models"
)

// withRelations preloads the category and subcategory of contacts.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").Preload("Subcategory")
}

// ListContacts retrieves all contacts ordered by ID.
func (s *SQLiteStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.WithContext(ctx).Scopes(withRelations).Order("id").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// GetContact retrieves a contact by ID.
func (s *SQLiteStore) GetContact(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.WithContext(ctx).Scopes(withRelations).First(&contact, id).Error; err != nil {
		return nil, notFound(err, "contact", id)
	}
	return &contact, nil
}

// EmailTaken reports whether another contact already uses email.
func (s *SQLiteStore) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.Contact{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// CreateContact inserts a new contact without touching its associations.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// UpdateContact saves all columns of an existing contact.
func (s *SQLiteStore) UpdateContact(ctx context.Context, contact *models.Contact) error {
	result := s.db.WithContext(ctx).Omit(clause.Associations).Save(contact)
	if result.Error != nil {
		return fmt.Errorf("failed to update contact: %w", result.Error)
	}
	return nil
}

// DeleteContact removes a contact by ID.
func (s *SQLiteStore) DeleteContact(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("contact", id)
	}
	return nil
}
