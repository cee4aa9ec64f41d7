// Package models defines the core domain models for the contact book.
//
// # Models
//
//   - Category: top-level grouping of contacts (private, business, other)
//   - Subcategory: finer grouping that always belongs to one Category
//   - Contact: a person in the address book
//   - User: operator account allowed to modify contacts
//
// # Design Principles
//
// 1. **Kind over name**: Category.Kind drives business rules; Category.Name is only a label
// 2. **Mutually exclusive subcategory fields**: a Contact never has both SubcategoryID and
// CustomSubcategory set
// 3. **No secrets on the wire**: password hashes are never serialized to JSON
//
// Models carry gorm tags and are persisted by the storage/sqlite package.
package models
