package models

import "time"

// Roles recognized by the authorization middleware.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User is a registered account, either a requester or an administrator.
type User struct {
	ID          string    `bson:"id" json:"id"`
	FirstName   string    `bson:"firstname" json:"firstname"`
	LastName    string    `bson:"lastname" json:"lastname"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password" json:"-"`
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	Role        string    `bson:"role" json:"role"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// TopBooker is a user ranked by how many bookings they have submitted.
type TopBooker struct {
	User         `bson:",inline"`
	BookingCount int `bson:"booking_count" json:"booking_count"`
}
