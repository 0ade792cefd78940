package models

import "time"

// Blog is an editorial post shown on the marketing site.
type Blog struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	AuthorID    string    `bson:"author_id" json:"author_id"`
	IsApproved  bool      `bson:"is_approved" json:"is_approved"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Business is a venue owner listing products on the marketplace.
type Business struct {
	ID            string    `bson:"id" json:"id"`
	VenueName     string    `bson:"venue_name" json:"venue_name"`
	Email         string    `bson:"email" json:"email"`
	PhoneNumber   string    `bson:"phone_number" json:"phone_number"`
	PanVatNumber  string    `bson:"pan_vat_number,omitempty" json:"pan_vat_number,omitempty"`
	Active        bool      `bson:"active" json:"active"`
	VenueAddress  string    `bson:"venue_address" json:"venue_address"`
	ContactPerson string    `bson:"contact_person" json:"contact_person"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Contact is an inbound inquiry from the public contact form.
type Contact struct {
	ID            string    `bson:"id" json:"id"`
	BusinessName  string    `bson:"business_name" json:"business_name"`
	Email         string    `bson:"email" json:"email"`
	Address       string    `bson:"address" json:"address"`
	PhoneNumber   string    `bson:"phone_number" json:"phone_number"`
	ContactPerson string    `bson:"contact_person" json:"contact_person"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
