package entity

import "time"

type Conversation struct {
	ID           string         `json:"id" firestore:"id"`
	Participants []string       `json:"participants" firestore:"participants"`
	CustomerID   string         `json:"customer_id" firestore:"customerId"`
	TailorID     string         `json:"tailor_id" firestore:"tailorId"`
	OrderID      string         `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	LastMessage  string         `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	UnreadCount  map[string]int `json:"unread_count" firestore:"unreadCount"` // userID -> unread

	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
}

type Message struct {
	ID             string `json:"id" firestore:"id"`
	ConversationID string `json:"conversation_id" firestore:"conversationId"`
	SenderID       string `json:"sender_id" firestore:"senderId"`
	Content        string `json:"content" firestore:"content"`
	Type           string `json:"type" firestore:"type"` // "text", "image"

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
