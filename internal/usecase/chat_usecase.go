package usecase

import (
	"context"
	"encoding/json"
	"time"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/logger"
)

type ChatUseCase struct {
	chatRepo   repository.ChatRepository
	tailorRepo repository.TailorRepository
	notifier   MessageNotifier
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	tailorRepo repository.TailorRepository,
	notifier MessageNotifier,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:   chatRepo,
		tailorRepo: tailorRepo,
		notifier:   notifier,
	}
}

// StartConversation returns the existing conversation between the customer
// and the tailor, creating it on first contact.
func (uc *ChatUseCase) StartConversation(ctx context.Context, customerID, tailorID string) (*entity.Conversation, error) {
	tailor, err := uc.tailorRepo.GetByID(ctx, tailorID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.chatRepo.GetConversationByParticipants(ctx, customerID, tailorID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	conversation := &entity.Conversation{
		Participants: []string{customerID, tailor.UserID},
		CustomerID:   customerID,
		TailorID:     tailorID,
		UnreadCount:  map[string]int{},
	}

	if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (uc *ChatUseCase) ListMyConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	return uc.chatRepo.ListConversationsByUserID(ctx, userID)
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, callerUID, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	conversation, err := uc.participantConversation(ctx, callerUID, conversationID)
	if err != nil {
		return nil, 0, err
	}

	messages, total, err := uc.chatRepo.ListMessagesByConversationID(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	// Opening the thread clears the reader's unread counter.
	if conversation.UnreadCount[callerUID] > 0 {
		conversation.UnreadCount[callerUID] = 0
		if err := uc.chatRepo.UpdateConversation(ctx, conversation); err != nil {
			logger.Warn("Failed to clear unread count: %v", err)
		}
	}

	return messages, total, nil
}

type SendMessageInput struct {
	Content string
	Type    string
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, callerUID, conversationID string, input SendMessageInput) (*entity.Message, error) {
	conversation, err := uc.participantConversation(ctx, callerUID, conversationID)
	if err != nil {
		return nil, err
	}

	messageType := input.Type
	if messageType == "" {
		messageType = "text"
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       callerUID,
		Content:        input.Content,
		Type:           messageType,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = input.Content
	conversation.LastMessageAt = time.Now()
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = map[string]int{}
	}
	for _, participant := range conversation.Participants {
		if participant != callerUID {
			conversation.UnreadCount[participant]++
		}
	}

	if err := uc.chatRepo.UpdateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	uc.notifyParticipants(conversation, message, callerUID)

	return message, nil
}

func (uc *ChatUseCase) participantConversation(ctx context.Context, callerUID, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	for _, participant := range conversation.Participants {
		if participant == callerUID {
			return conversation, nil
		}
	}
	return nil, errors.Forbidden("You are not part of this conversation", nil)
}

func (uc *ChatUseCase) notifyParticipants(conversation *entity.Conversation, message *entity.Message, senderID string) {
	if uc.notifier == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":    "new_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("Failed to encode message notification: %v", err)
		return
	}

	for _, participant := range conversation.Participants {
		if participant != senderID {
			uc.notifier.SendToUser(participant, payload)
		}
	}
}
