package models

import "time"

// ProductImage is a single uploaded image belonging to a product.
type ProductImage struct {
	ID  string `bson:"id" json:"id"`
	URL string `bson:"url" json:"url"`
}

// Product is a bookable venue or service listed by a business.
type Product struct {
	ID          string         `bson:"id" json:"id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Address     string         `bson:"address" json:"address"`
	CategoryID  string         `bson:"category_id" json:"categoryId"`
	DistrictID  string         `bson:"district_id" json:"districtId"`
	VenueID     string         `bson:"venue_id" json:"venueId"`
	Images      []ProductImage `bson:"product_image,omitempty" json:"product_image,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at" json:"updated_at"`
}

// ProductDetail is a product joined with its display references and line items.
type ProductDetail struct {
	Product  `bson:",inline"`
	Category *Category  `bson:"category,omitempty" json:"category,omitempty"`
	District *District  `bson:"district,omitempty" json:"District,omitempty"`
	Venue    *Business  `bson:"venue,omitempty" json:"Venue,omitempty"`
	Items    []LineItem `bson:"items,omitempty" json:"items,omitempty"`
}
