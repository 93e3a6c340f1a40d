package models

import "time"

// Artist is a makeup artist's public profile. The availability config is
// embedded on the record as a single document, matching how it is edited:
// replaced wholesale by the artist or an admin.
type Artist struct {
	ID           string              `bson:"id" json:"id"`
	UserID       string              `bson:"user_id" json:"userId"` // owning account
	Name         string              `bson:"name" json:"name"`
	Bio          string              `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties  []string            `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Location     string              `bson:"location,omitempty" json:"location,omitempty"`
	SessionPrice float64             `bson:"session_price" json:"sessionPrice"`
	Rating       float64             `bson:"rating" json:"rating"`
	ReviewCount  int                 `bson:"review_count" json:"reviewCount"`
	Availability *AvailabilityConfig `bson:"availability,omitempty" json:"availability,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`
}
