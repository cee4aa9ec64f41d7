package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmynk/contactbook/internal/models"
)

// HashFunc turns a plaintext password into a storable hash.
type HashFunc func(password string) (string, error)

// Default category and subcategory labels.
const (
	CategoryPrivate  = "Prywatny"
	CategoryBusiness = "Służbowy"
	CategoryOther    = "Inne"
)

var defaultCategories = []models.Category{
	{Name: CategoryPrivate, Kind: models.KindPrivate},
	{Name: CategoryBusiness, Kind: models.KindBusiness},
	{Name: CategoryOther, Kind: models.KindOther},
}

var defaultBusinessSubcategories = []string{"Szef", "Klient"}

// samplePassword is the initial password of seeded sample contacts.
const samplePassword = "changeme1"

// Seed populates the default categories, subcategories and, when
// withSamples is set, a few sample contacts. Each step only runs when its
// table (or the business subcategory set) is empty, so Seed is idempotent.
func (s *SQLiteStore) Seed(ctx context.Context, withSamples bool, hash HashFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedCategories(tx); err != nil {
			return err
		}
		if err := seedBusinessSubcategories(tx); err != nil {
			return err
		}
		if withSamples {
			return seedContacts(tx, hash)
		}
		return nil
	})
}

func seedCategories(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, len(defaultCategories))
	copy(categories, defaultCategories)
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	slog.Info("Seeded categories", "count", len(categories))
	return nil
}

func seedBusinessSubcategories(tx *gorm.DB) error {
	var business models.Category
	err := tx.Where("kind = ?", models.KindBusiness).Order("id").First(&business).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find business category: %w", err)
	}

	var count int64
	if err := tx.Model(&models.Subcategory{}).Where("category_id = ?", business.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count subcategories: %w", err)
	}
	if count > 0 {
		return nil
	}

	subs := make([]models.Subcategory, len(defaultBusinessSubcategories))
	for i, name := range defaultBusinessSubcategories {
		subs[i] = models.Subcategory{Name: name, CategoryID: business.ID}
	}
	if err := tx.Create(&subs).Error; err != nil {
		return fmt.Errorf("failed to seed subcategories: %w", err)
	}
	slog.Info("Seeded subcategories", "category", business.Name, "count", len(subs))
	return nil
}

func seedContacts(tx *gorm.DB, hash HashFunc) error {
	var count int64
	if err := tx.Model(&models.Contact{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count contacts: %w", err)
	}
	if count > 0 {
		return nil
	}

	byKind := map[models.CategoryKind]*models.Category{}
	var categories []models.Category
	if err := tx.Preload("Subcategories").Order("id").Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	for i := range categories {
		if _, ok := byKind[categories[i].Kind]; !ok {
			byKind[categories[i].Kind] = &categories[i]
		}
	}
	private, business, other := byKind[models.KindPrivate], byKind[models.KindBusiness], byKind[models.KindOther]
	if private == nil || business == nil || other == nil || len(business.Subcategories) == 0 {
		slog.Warn("Skipping sample contacts, default categories missing")
		return nil
	}

	passwordHash, err := hash(samplePassword)
	if err != nil {
		return fmt.Errorf("failed to hash sample password: %w", err)
	}

	gymFriend := models.Subcategory{Name: "Znajomy z siłowni", CategoryID: other.ID}
	if existing := other.FindSubcategoryByName(gymFriend.Name); existing != nil {
		gymFriend = *existing
	} else if err := tx.Create(&gymFriend).Error; err != nil {
		return fmt.Errorf("failed to seed subcategory: %w", err)
	}

	birth := time.Date(1985, time.May, 10, 0, 0, 0, 0, time.UTC)
	boss := business.FindSubcategoryByName("Szef")
	if boss == nil {
		boss = &business.Subcategories[0]
	}

	contacts := []models.Contact{
		{
			FirstName: "Alicja", LastName: "Prywatna", Email: "alicja@prywatna.pl",
			PhoneNumber: "112", BirthDate: &birth, CategoryID: private.ID,
		},
		{
			FirstName: "Tomasz", LastName: "Wolny", Email: "tomasz@inne.pl",
			PhoneNumber: "112", BirthDate: &birth, CategoryID: other.ID, SubcategoryID: &gymFriend.ID,
		},
		{
			FirstName: "Barbara", LastName: "Szefowa", Email: "barbara@firma.pl",
			PhoneNumber: "112", BirthDate: &birth, CategoryID: business.ID, SubcategoryID: &boss.ID,
		},
	}
	for i := range contacts {
		contacts[i].PasswordHash = passwordHash
	}
	if err := tx.Omit(clause.Associations).Create(&contacts).Error; err != nil {
		return fmt.Errorf("failed to seed contacts: %w", err)
	}
	slog.Info("Seeded sample contacts", "count", len(contacts))
	return nil
}
