package models

import "time"

// Product is a makeup product sold through the platform shop.
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Brand       string    `bson:"brand,omitempty" json:"brand,omitempty"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// InStock reports whether at least n units are available.
func (p *Product) InStock(n int) bool {
	return p.Stock >= n
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category string  `form:"category"`
	Brand    string  `form:"brand"`
	MinPrice float64 `form:"minPrice"`
	MaxPrice float64 `form:"maxPrice"`
}
