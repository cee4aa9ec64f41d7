package sqlite

import (
	"gorm.io/gorm"

	"github.com/mmynk/contactbook/internal/models"
)

// schema lists the models migrated on startup.
// IMPORTANT: Categories must be migrated BEFORE contacts due to foreign key constraints.
var schema = []any{
	&models.User{},
	&models.Category{},
	&models.Subcategory{},
	&models.Contact{},
}

// indexes holds statements gorm tags cannot express.
const indexes = `
CREATE INDEX IF NOT EXISTS idx_subcategories_category_name ON subcategories(category_id, name COLLATE NOCASE);
`

// runMigrations executes the schema setup.
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(schema...); err != nil {
		return err
	}
	return db.Exec(indexes).Error
}
