package models

import (
	"strconv"
	"time"

	"getsbiplay.ru/store/api/pkg/global"
)

// Category is the fixed set of storefront categories.
type Category string

const (
	CategoryConsoles    Category = "consoles"
	CategoryGames       Category = "games"
	CategoryAccounts    Category = "accounts"
	CategoryControllers Category = "controllers"
	CategoryServices    Category = "services"
)

var Categories = []Category{
	CategoryConsoles,
	CategoryGames,
	CategoryAccounts,
	CategoryControllers,
	CategoryServices,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxProductImages caps the number of encoded image payloads per product.
const MaxProductImages = 6

// Product is a catalog entry. ID is an opaque app-level identifier; the
// remote store upserts on it, not on the document _id.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Discount    float64   `json:"discount,omitempty" bson:"discount,omitempty"` // percent, 0-100
	Category    Category  `json:"category" bson:"category"`
	Images      []string  `json:"images" bson:"images"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// NewProductID synthesizes a time-derived identifier for products created
// without one.
func NewProductID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// SetTimestamps refreshes updated_at and backfills created_at on first save.
func (p *Product) SetTimestamps() {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// Validate checks field constraints before any persistence attempt.
func (p *Product) Validate() []global.ValidationError {
	var errs []global.ValidationError

	if p.Name == "" {
		errs = append(errs, global.ValidationError{
			Field: "name", Message: "name is required", Code: "required",
		})
	}
	if p.Price < 0 {
		errs = append(errs, global.ValidationError{
			Field: "price", Message: "price must not be negative", Code: "out_of_range",
		})
	}
	if p.Discount < 0 || p.Discount > 100 {
		errs = append(errs, global.ValidationError{
			Field: "discount", Message: "discount must be between 0 and 100", Code: "out_of_range",
		})
	}
	if !p.Category.Valid() {
		errs = append(errs, global.ValidationError{
			Field: "category", Message: "unknown category", Code: "invalid_value",
		})
	}
	if len(p.Images) > MaxProductImages {
		errs = append(errs, global.ValidationError{
			Field: "images", Message: "at most 6 images are allowed", Code: "too_many",
		})
	}

	return errs
}
