package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Menu section labels as the backend stores them.
const (
	CategoryAppetizers  = "appetizers"
	CategoryMainCourses = "main-courses"
	CategoryDesserts    = "desserts"
	CategoryDrinks      = "drinks"
)

// MenuCategories is the fixed section order of the menu page.
var MenuCategories = []string{
	CategoryAppetizers,
	CategoryMainCourses,
	CategoryDesserts,
	CategoryDrinks,
}

// MenuItem is one orderable dish. Immutable once fetched from the backend.
type MenuItem struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	PictureURL  string          `json:"picture_url"`
}

// NormalizeCategory maps a raw category label onto the section keys:
// lower-cased, whitespace replaced with hyphens ("Main Courses" -> "main-courses").
func NormalizeCategory(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), "-")
}

// Section returns the normalized category of the item.
func (m MenuItem) Section() string {
	return NormalizeCategory(m.Category)
}
