package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID         string `json:"id" firestore:"id"`
	CustomerID string `json:"customer_id" firestore:"customerId"`
	TailorID   string `json:"tailor_id" firestore:"tailorId"`

	GarmentType   string   `json:"garment_type" firestore:"garmentType"`
	Description   string   `json:"description,omitempty" firestore:"description,omitempty"`
	Amount        float64  `json:"amount" firestore:"amount"`
	MeasurementID string   `json:"measurement_id,omitempty" firestore:"measurementId,omitempty"`
	Images        []string `json:"images,omitempty" firestore:"images,omitempty"`

	Status  string `json:"status" firestore:"status"`
	DueDate string `json:"due_date,omitempty" firestore:"dueDate,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// orderTransitions lists the forward transitions a tailor may drive. Cancelling
// is handled separately: any state except completed may be cancelled, and only
// by the ordering customer.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusAccepted},
	OrderStatusAccepted:   {OrderStatusInProgress},
	OrderStatusInProgress: {OrderStatusCompleted},
}

// CanAdvance reports whether an order in the current status may move to next.
func (o *Order) CanAdvance(next string) bool {
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanCancel reports whether the order may still be cancelled.
func (o *Order) CanCancel() bool {
	return o.Status != OrderStatusCompleted && o.Status != OrderStatusCancelled
}
