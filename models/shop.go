package models

import "time"

// Shop represents a barbershop that owns services and employs barbers.
type Shop struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"` // User who owns the shop
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description,omitempty"`
	Location    string    `bson:"location" json:"location"`
	Phone       string    `bson:"phone" json:"phone,omitempty"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
