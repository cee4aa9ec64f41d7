package models

import "strings"

// CategoryKind tags a Category with the policy used for its subcategories.
type CategoryKind string

const (
	// KindPrivate categories carry no subcategory at all.
	KindPrivate CategoryKind = "private"

	// KindBusiness categories require one of their registered subcategories.
	KindBusiness CategoryKind = "business"

	// KindOther categories accept free text that is normalized into a Subcategory.
	KindOther CategoryKind = "other"
)

// Category groups contacts.
type Category struct {
	// ID is the auto-incremented primary key.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display label (e.g., "Prywatny", "Służbowy", "Inne").
	Name string `gorm:"not null" json:"name"`

	// Kind is assigned at seed time and selects the reconciliation policy.
	Kind CategoryKind `gorm:"not null" json:"kind"`

	// Subcategories are the registered subcategories of this category.
	// Only populated when explicitly preloaded.
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// Subcategory is a named subdivision of a Category.
// Name uniqueness within a category is enforced by the reconciliation rule, not the schema.
type Subcategory struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
}

// FindSubcategory returns the subcategory with the given ID, or nil if the
// category has no such subcategory.
func (c *Category) FindSubcategory(id uint) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i]
		}
	}
	return nil
}

// FindSubcategoryByName returns the subcategory whose name matches name
// case-insensitively, or nil.
func (c *Category) FindSubcategoryByName(name string) *Subcategory {
	for i := range c.Subcategories {
		if strings.EqualFold(c.Subcategories[i].Name, name) {
			return &c.Subcategories[i]
		}
	}
	return nil
}
