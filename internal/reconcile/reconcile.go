// Package reconcile derives a contact's final subcategory fields from user
// input, according to the policy of the target category.
package reconcile

import (
	"strings"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/models"
)

// Input is the proposed subcategory information for a contact.
type Input struct {
	SubcategoryID     *uint
	CustomSubcategory *string
}

// Result is the resolved subcategory information.
//
// When NewSubcategory is non-empty the caller must create a subcategory with
// that name under the category and use its ID as the contact's SubcategoryID.
// CustomSubcategory is always nil: free text is normalized into a relation.
type Result struct {
	SubcategoryID     *uint
	CustomSubcategory *string
	NewSubcategory    string
}

// Resolve applies the policy selected by category.Kind.
// category.Subcategories must be loaded.
//
//	business: SubcategoryID required and must belong to the category
//	other:    CustomSubcategory required; matched case-insensitively by name,
//	          otherwise a new subcategory is requested
//	private:  both fields cleared
func Resolve(category *models.Category, in Input) (Result, error) {
	switch category.Kind {
	case models.KindBusiness:
		if in.SubcategoryID == nil {
			return Result{}, apperr.Validation("category %q requires a subcategory", category.Name)
		}
		sub := category.FindSubcategory(*in.SubcategoryID)
		if sub == nil {
			return Result{}, apperr.Validation("subcategory %d does not belong to category %q", *in.SubcategoryID, category.Name)
		}
		return Result{SubcategoryID: &sub.ID}, nil

	case models.KindOther:
		var name string
		if in.CustomSubcategory != nil {
			name = strings.TrimSpace(*in.CustomSubcategory)
		}
		if name == "" {
			return Result{}, apperr.Validation("category %q requires a custom subcategory", category.Name)
		}
		if sub := category.FindSubcategoryByName(name); sub != nil {
			return Result{SubcategoryID: &sub.ID}, nil
		}
		return Result{NewSubcategory: name}, nil

	default:
		return Result{}, nil
	}
}
