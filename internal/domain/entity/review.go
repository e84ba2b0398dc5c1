package entity

import (
	"time"
)

// ReviewResponse is the tailor's reply to a review. A review carries at most
// one response; responding again replaces the previous one.
type ReviewResponse struct {
	Message     string    `json:"message" firestore:"message"`
	ResponderID string    `json:"responder_id" firestore:"responderId"`
	RespondedAt time.Time `json:"responded_at" firestore:"respondedAt"`
}

// Review is one customer's review of one tailor. Customer name and avatar are
// snapshotted at write time, not live-linked to the user record.
type Review struct {
	ID       string `json:"id" firestore:"id"`
	TailorID string `json:"tailor_id" firestore:"tailorId"`

	CustomerID     string `json:"customer_id" firestore:"customerId"`
	CustomerName   string `json:"customer_name" firestore:"customerName"`
	CustomerAvatar string `json:"customer_avatar,omitempty" firestore:"customerAvatar,omitempty"`

	Rating  float64 `json:"rating" firestore:"rating"` // 1-5
	Comment string  `json:"comment" firestore:"comment"`

	OrderType   string   `json:"order_type,omitempty" firestore:"orderType,omitempty"`
	OrderAmount *float64 `json:"order_amount,omitempty" firestore:"orderAmount,omitempty"`
	Images      []string `json:"images,omitempty" firestore:"images,omitempty"`

	Response *ReviewResponse `json:"response,omitempty" firestore:"response,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ReviewSummary is the read model exposed alongside a tailor's review list.
// PendingResponses is computed per request and never stored on the tailor.
type ReviewSummary struct {
	TotalReviews     int     `json:"totalReviews"`
	AverageRating    float64 `json:"averageRating"`
	PendingResponses int     `json:"pendingResponses"`
}
