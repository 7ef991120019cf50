package model

import (
	"fmt"
	"strings"
)

// Category classifies a tracked item and controls which optional fields are
// relevant and how it is grouped in summaries.
type Category string

// The closed set of categories. The order is significant: list filters and
// histogram output iterate in this order.
const (
	CategorySubscription Category = "subscription"
	CategoryFood         Category = "food"
	CategoryDocument     Category = "document"
	CategoryInsurance    Category = "insurance"
	CategoryWarranty     Category = "warranty"
	CategoryMedicine     Category = "medicine"
	CategoryHome         Category = "home"
	CategoryOther        Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySubscription,
	CategoryFood,
	CategoryDocument,
	CategoryInsurance,
	CategoryWarranty,
	CategoryMedicine,
	CategoryHome,
	CategoryOther,
}

// Valid reports whether c is a member of the category enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable form used in tables and prompts.
func (c Category) Label() string {
	switch c {
	case CategorySubscription:
		return "Subscription"
	case CategoryFood:
		return "Food"
	case CategoryDocument:
		return "Document"
	case CategoryInsurance:
		return "Insurance"
	case CategoryWarranty:
		return "Warranty"
	case CategoryMedicine:
		return "Medicine"
	case CategoryHome:
		return "Home"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// ParseCategory resolves user input (enum value or display label, any case)
// to a category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
