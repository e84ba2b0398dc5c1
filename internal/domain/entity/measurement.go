package entity

import (
	"time"
)

// Measurement is a customer-owned set of named body measurements, in
// centimeters, reusable across orders.
type Measurement struct {
	ID         string             `json:"id" firestore:"id"`
	CustomerID string             `json:"customer_id" firestore:"customerId"`
	Name       string             `json:"name" firestore:"name"`
	Values     map[string]float64 `json:"values" firestore:"values"`
	Notes      string             `json:"notes,omitempty" firestore:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
