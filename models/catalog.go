package models

import "time"

// Category is one of the fixed vocabulary of product categories.
type Category struct {
	ID           string    `bson:"id" json:"id"`
	CategoryName string    `bson:"category_name" json:"category_name"`
	CategoryIcon string    `bson:"category_icon,omitempty" json:"category_icon,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// District is a location a product can be listed under.
type District struct {
	ID           string    `bson:"id" json:"id"`
	DistrictName string    `bson:"district_name" json:"district_name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// EventType is a tag from the fixed vocabulary of event kinds (wedding,
// conference, ...) a booking can be associated with.
type EventType struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
