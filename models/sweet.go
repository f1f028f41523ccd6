package models

import "time"

// Sweet is a catalog entry with a price and a quantity on hand.
type Sweet struct {
	// ID is the sequential identifier assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the sweet (1-100 characters).
	Name string `json:"name"`

	// Category groups sweets for filtering (1-50 characters).
	Category string `json:"category"`

	// Price is a positive integer in minor currency units (cents).
	Price int64 `json:"price"`

	// Quantity is the number of units on hand. Never negative.
	Quantity int64 `json:"quantity"`

	// Description is optional free text shown in the catalog.
	Description *string `json:"description"`

	// ImageURL optionally points at a product image.
	ImageURL *string `json:"imageUrl"`

	// CreatedAt orders the catalog (newest first) in listings.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Sweet model.
func (s Sweet) TableName() string {
	return "sweets"
}

// SweetFilter holds the optional search criteria for the catalog.
// All supplied filters are combined as a conjunction; a zero filter
// matches every sweet.
type SweetFilter struct {
	// Query is matched case-insensitively as a substring of the name
	// or the description.
	Query string

	// Category, when non-empty, must match exactly.
	Category string

	// MinPrice and MaxPrice bound the price inclusively when set.
	MinPrice *int64
	MaxPrice *int64
}

// IsZero reports whether no filter criteria were supplied.
func (f SweetFilter) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// SweetPatch is a merge-patch for a sweet: only non-nil fields are
// written, everything else keeps its stored value.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *int64
	Quantity    *int64
	Description *string
	ImageURL    *string
}

// IsZero reports whether the patch carries no changes.
func (p SweetPatch) IsZero() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil &&
		p.Quantity == nil && p.Description == nil && p.ImageURL == nil
}
