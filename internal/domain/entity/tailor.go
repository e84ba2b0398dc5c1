package entity

import (
	"time"
)

type Location struct {
	Address   string   `json:"address,omitempty" firestore:"address,omitempty"`
	City      string   `json:"city,omitempty" firestore:"city,omitempty"`
	Region    string   `json:"region,omitempty" firestore:"region,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`
}

type PriceRange struct {
	Min int `json:"min" firestore:"min"`
	Max int `json:"max" firestore:"max"`
}

type PortfolioItem struct {
	ID       string `json:"id" firestore:"id"`
	MediaURL string `json:"media_url" firestore:"mediaUrl"`
	Title    string `json:"title" firestore:"title"`
	Category string `json:"category,omitempty" firestore:"category,omitempty"`
	Price    *int   `json:"price,omitempty" firestore:"price,omitempty"`
}

// TailorProfile is a tailor's public business listing. Rating and ReviewCount
// are derived from the review collection and overwritten on every sync; they
// are never authored directly.
type TailorProfile struct {
	ID           string `json:"id" firestore:"id"`
	UserID       string `json:"user_id" firestore:"userId"`
	BusinessName string `json:"business_name" firestore:"businessName"`
	Description  string `json:"description" firestore:"description"`
	AvatarURL    string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"review_count" firestore:"reviewCount"`

	Specialties    []string        `json:"specialties" firestore:"specialties"`
	Location       Location        `json:"location" firestore:"location"`
	Portfolio      []PortfolioItem `json:"portfolio" firestore:"portfolio"`
	PriceRange     PriceRange      `json:"price_range" firestore:"priceRange"`
	TurnaroundTime string          `json:"turnaround_time,omitempty" firestore:"turnaroundTime,omitempty"`
	Verified       bool            `json:"verified" firestore:"verified"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
