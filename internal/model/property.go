package model

import "github.com/lib/pq"

// Property is a listing summary as shown on a property card.
type Property struct {
	ID          string         `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Location    string         `db:"location" json:"location"`
	Price       float64        `db:"price" json:"price"`
	ImageURL    string         `db:"image_url" json:"imageUrl"`
	Rating      float64        `db:"rating" json:"rating"`
	ReviewCount int            `db:"review_count" json:"reviewCount"`
	Type        string         `db:"type" json:"type"` // Apartment/House/Villa/...
	Bedrooms    int            `db:"bedrooms" json:"bedrooms"`
	Bathrooms   int            `db:"bathrooms" json:"bathrooms"`
	Area        int            `db:"area" json:"area"` // m²
	Amenities   pq.StringArray `db:"amenities" json:"amenities"`
	Featured    bool           `db:"featured" json:"featured"`
}
