package repository

import (
	"context"

	"tailorlink/internal/domain/entity"
)

type ChatRepository interface {
	// Conversation methods
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	GetConversationByParticipants(ctx context.Context, customerID, tailorID string) (*entity.Conversation, error)
	ListConversationsByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error)
	UpdateConversation(ctx context.Context, conversation *entity.Conversation) error

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessagesByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
}
