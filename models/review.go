package models

import "time"

// Review is a customer's rating of an artist. Reviews may only be left by
// customers holding a completed booking with that artist.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	ArtistID   string    `bson:"artist_id" json:"artistId"`
	CustomerID string    `bson:"customer_id" json:"customerId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
