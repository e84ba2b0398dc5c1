package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
)

type memoryChatRepository struct {
	mu            sync.RWMutex
	conversations map[string]entity.Conversation
	convOrder     []string
	messages      map[string]entity.Message
	msgOrder      []string
}

func NewMemoryChatRepository() repository.ChatRepository {
	return &memoryChatRepository{
		conversations: make(map[string]entity.Conversation),
		messages:      make(map[string]entity.Message),
	}
}

func (r *memoryChatRepository) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}

	now := time.Now()
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = now
	}
	conversation.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversation.ID]; !ok {
		r.convOrder = append(r.convOrder, conversation.ID)
	}
	r.conversations[conversation.ID] = *conversation
	return nil
}

func (r *memoryChatRepository) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return &conversation, nil
}

func (r *memoryChatRepository) GetConversationByParticipants(ctx context.Context, customerID, tailorID string) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.convOrder {
		c := r.conversations[id]
		if c.CustomerID == customerID && c.TailorID == tailorID {
			return &c, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memoryChatRepository) ListConversationsByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversations := make([]*entity.Conversation, 0)
	for _, id := range r.convOrder {
		c := r.conversations[id]
		for _, p := range c.Participants {
			if p == userID {
				conversation := c
				conversations = append(conversations, &conversation)
				break
			}
		}
	}
	return conversations, nil
}

func (r *memoryChatRepository) UpdateConversation(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversation.ID]; !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UpdatedAt = time.Now()
	r.conversations[conversation.ID] = *conversation
	return nil
}

func (r *memoryChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[message.ID]; !ok {
		r.msgOrder = append(r.msgOrder, message.ID)
	}
	r.messages[message.ID] = *message
	return nil
}

func (r *memoryChatRepository) ListMessagesByConversationID(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entity.Message, 0)
	for _, id := range r.msgOrder {
		if r.messages[id].ConversationID == conversationID {
			message := r.messages[id]
			matched = append(matched, &message)
		}
	}

	total := int64(len(matched))

	if offset >= len(matched) {
		return []*entity.Message{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
