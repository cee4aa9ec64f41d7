package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/auth"
	"github.com/mmynk/contactbook/internal/models"
	"github.com/mmynk/contactbook/internal/reconcile"
	"github.com/mmynk/contactbook/internal/storage"
)

// ContactInput carries the writable fields of a contact for Create and Update.
type ContactInput struct {
	// ID must match the path ID on update; ignored on create.
	ID uint

	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   *time.Time

	// Password is plaintext. Required on create; on update an empty
	// password keeps the stored hash.
	Password string

	CategoryID        uint
	SubcategoryID     *uint
	CustomSubcategory *string
}

func (in *ContactInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
}

func (in *ContactInput) validate(requirePassword bool) error {
	switch {
	case in.FirstName == "":
		return apperr.Validation("first name is required")
	case in.LastName == "":
		return apperr.Validation("last name is required")
	case in.Email == "":
		return apperr.Validation("email is required")
	case in.PhoneNumber == "":
		return apperr.Validation("phone number is required")
	case in.CategoryID == 0:
		return apperr.Validation("category is required")
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return apperr.Validation("email %q is not a valid address", in.Email)
	}
	if in.BirthDate != nil && in.BirthDate.After(time.Now()) {
		return apperr.Validation("birth date cannot be in the future")
	}
	if requirePassword || in.Password != "" {
		return auth.ValidatePassword(in.Password)
	}
	return nil
}

// ContactService implements the contact operations.
type ContactService struct {
	store storage.Store
	hash  func(string) (string, error)
}

// NewContactService creates a new ContactService with the given storage backend.
func NewContactService(store storage.Store) *ContactService {
	return &ContactService{store: store, hash: auth.HashPassword}
}

// List returns every contact flattened with its category and subcategory names.
func (s *ContactService) List(ctx context.Context) ([]models.ContactDTO, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.ContactDTO, len(contacts))
	for i := range contacts {
		dtos[i] = contacts[i].DTO()
	}

	slog.Debug("ListContacts successful", "count", len(dtos))
	return dtos, nil
}

// Get retrieves a single contact with its category and subcategory.
func (s *ContactService) Get(ctx context.Context, id uint) (*models.Contact, error) {
	return s.store.GetContact(ctx, id)
}

// Create validates and inserts a new contact. The subcategory fields go
// through the same reconciliation as Update.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*models.Contact, error) {
	in.normalize()
	slog.Info("CreateContact request received", "email", in.Email, "category_id", in.CategoryID)

	if err := in.validate(true); err != nil {
		return nil, err
	}

	passwordHash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	var created *models.Contact
	err = s.store.WithTx(ctx, func(tx storage.Store) error {
		taken, err := tx.EmailTaken(ctx, in.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Validation("a contact with email %q already exists", in.Email)
		}

		category, err := loadCategory(ctx, tx, in.CategoryID)
		if err != nil {
			return err
		}

		contact := &models.Contact{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: passwordHash,
			PhoneNumber:  in.PhoneNumber,
			BirthDate:    in.BirthDate,
			CategoryID:   category.ID,
		}
		if err := applySubcategory(ctx, tx, category, contact, in); err != nil {
			return err
		}
		if err := tx.CreateContact(ctx, contact); err != nil {
			return err
		}

		created, err = tx.GetContact(ctx, contact.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Contact created", "contact_id", created.ID, "subcategory_id", created.SubcategoryID)
	return created, nil
}

// Update replaces the fields of contact id with in and resolves its
// subcategory according to the target category.
func (s *ContactService) Update(ctx context.Context, id uint, in ContactInput) (*models.ContactDTO, error) {
	in.normalize()
	slog.Info("UpdateContact request received", "contact_id", id, "category_id", in.CategoryID)

	if id != in.ID {
		return nil, apperr.Validation("contact id %d does not match body id %d", id, in.ID)
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}

	var passwordHash string
	if in.Password != "" {
		var err error
		if passwordHash, err = s.hash(in.Password); err != nil {
			return nil, err
		}
	}

	var updated *models.Contact
	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		contact, err := tx.GetContact(ctx, id)
		if err != nil {
			return err
		}

		category, err := loadCategory(ctx, tx, in.CategoryID)
		if err != nil {
			return err
		}

		taken, err := tx.EmailTaken(ctx, in.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Validation("a contact with email %q already exists", in.Email)
		}

		contact.FirstName = in.FirstName
		contact.LastName = in.LastName
		contact.Email = in.Email
		contact.PhoneNumber = in.PhoneNumber
		contact.BirthDate = in.BirthDate
		contact.CategoryID = category.ID
		if passwordHash != "" {
			contact.PasswordHash = passwordHash
		}
		if err := applySubcategory(ctx, tx, category, contact, in); err != nil {
			return err
		}
		if err := tx.UpdateContact(ctx, contact); err != nil {
			return err
		}

		updated, err = tx.GetContact(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Contact updated", "contact_id", id, "subcategory_id", updated.SubcategoryID)
	dto := updated.DTO()
	return &dto, nil
}

// Delete removes contact id.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if err := s.store.DeleteContact(ctx, id); err != nil {
		return err
	}
	slog.Info("Contact deleted", "contact_id", id)
	return nil
}

// loadCategory fetches the target category of a write. A missing category is
// a validation problem of the request, not a missing resource.
func loadCategory(ctx context.Context, tx storage.Store, id uint) (*models.Category, error) {
	category, err := tx.GetCategory(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, apperr.Validation("category %d does not exist", id)
	}
	return category, err
}

// applySubcategory runs the reconciliation rule and writes its outcome into
// contact, creating a subcategory within tx when the rule asks for one.
func applySubcategory(ctx context.Context, tx storage.Store, category *models.Category, contact *models.Contact, in ContactInput) error {
	res, err := reconcile.Resolve(category, reconcile.Input{
		SubcategoryID:     in.SubcategoryID,
		CustomSubcategory: in.CustomSubcategory,
	})
	if err != nil {
		return err
	}

	contact.SubcategoryID = res.SubcategoryID
	contact.CustomSubcategory = res.CustomSubcategory

	if res.NewSubcategory != "" {
		sub := &models.Subcategory{Name: res.NewSubcategory, CategoryID: category.ID}
		if err := tx.CreateSubcategory(ctx, sub); err != nil {
			return fmt.Errorf("failed to create subcategory %q: %w", res.NewSubcategory, err)
		}
		slog.Info("Subcategory created", "category_id", category.ID, "subcategory_id", sub.ID, "name", sub.Name)
		contact.SubcategoryID = &sub.ID
	}
	return nil
}
