package models

import "time"

// Contact is an entry in the address book.
type Contact struct {
	// ID is the auto-incremented primary key.
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`

	// Email is unique across all contacts (exact match).
	Email string `gorm:"not null;uniqueIndex" json:"email"`

	// PasswordHash is a bcrypt hash. Never serialized.
	PasswordHash string `gorm:"not null" json:"-"`

	PhoneNumber string     `gorm:"not null" json:"phoneNumber"`
	BirthDate   *time.Time `json:"birthDate"`

	// CategoryID references the contact's Category.
	CategoryID uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `gorm:"constraint:OnDelete:RESTRICT" json:"category"`

	// SubcategoryID and CustomSubcategory are mutually exclusive.
	SubcategoryID     *uint        `gorm:"index" json:"subcategoryId"`
	Subcategory       *Subcategory `gorm:"constraint:OnDelete:SET NULL" json:"subcategory"`
	CustomSubcategory *string      `json:"customSubcategory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactDTO is the flattened representation of a Contact returned by
// listing and update, with category and subcategory names joined in.
type ContactDTO struct {
	ID              uint       `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	BirthDate       *time.Time `json:"birthDate"`
	CategoryID      uint       `json:"categoryId"`
	CategoryName    string     `json:"categoryName"`
	SubcategoryID   *uint      `json:"subcategoryId"`
	SubcategoryName *string    `json:"subcategoryName"`
}

// DTO flattens the contact. Category and Subcategory must be loaded for the
// names to be filled in.
func (c *Contact) DTO() ContactDTO {
	dto := ContactDTO{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		BirthDate:     c.BirthDate,
		CategoryID:    c.CategoryID,
		CategoryName:  c.Category.Name,
		SubcategoryID: c.SubcategoryID,
	}
	if c.Subcategory != nil {
		name := c.Subcategory.Name
		dto.SubcategoryName = &name
	} else if c.CustomSubcategory != nil {
		dto.SubcategoryName = c.CustomSubcategory
	}
	return dto
}
