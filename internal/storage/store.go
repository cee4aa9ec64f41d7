// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/contactbook/internal/models"
)

// Store defines the interface for contact book storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookups of a single missing entity return an error wrapping apperr.ErrNotFound.
type Store interface {
	// ListCategories returns all categories ordered by ID.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory retrieves a category with its subcategories preloaded.
	GetCategory(ctx context.Context, id uint) (*models.Category, error)

	// CreateSubcategory persists a new subcategory and populates sub.ID.
	CreateSubcategory(ctx context.Context, sub *models.Subcategory) error

	// ListContacts returns all contacts with Category and Subcategory preloaded, ordered by ID.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// GetContact retrieves a contact with Category and Subcategory preloaded.
	GetContact(ctx context.Context, id uint) (*models.Contact, error)

	// EmailTaken reports whether a contact other than excludeID uses email.
	// The comparison is an exact match. Pass 0 to check against every contact.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	// CreateContact persists a new contact and populates contact.ID.
	// Associations are not written.
	CreateContact(ctx context.Context, contact *models.Contact) error

	// UpdateContact saves every column of an existing contact.
	// Associations are not written.
	UpdateContact(ctx context.Context, contact *models.Contact) error

	// DeleteContact removes a contact by ID.
	DeleteContact(ctx context.Context, id uint) error

	// WithTx runs fn against a Store bound to a single transaction.
	// The transaction commits if fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// Close releases any resources held by the store.
	Close() error
}
