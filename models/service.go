package models

import "time"

// Service is a bookable offering (haircut, beard trim, ...) belonging to a shop.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	ShopID      string    `bson:"shop_id" json:"shop_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // Minutes
	Category    string    `bson:"category" json:"category,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
