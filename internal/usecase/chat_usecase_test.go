package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "tailorlink/internal/adapter/repository"
	"tailorlink/internal/domain/entity"
	"tailorlink/pkg/errors"
)

type capturingNotifier struct {
	sent map[string][][]byte
}

func (n *capturingNotifier) SendToUser(userID string, message []byte) {
	if n.sent == nil {
		n.sent = map[string][][]byte{}
	}
	n.sent[userID] = append(n.sent[userID], message)
}

func newChatFixture(t *testing.T, notifier MessageNotifier) (*ChatUseCase, *entity.TailorProfile) {
	t.Helper()

	tailorRepo := memrepo.NewMemoryTailorRepository()
	tailor := &entity.TailorProfile{
		UserID:       "tailor-user-1",
		BusinessName: "Suit Studio",
	}
	require.NoError(t, tailorRepo.Create(context.Background(), tailor))

	return NewChatUseCase(memrepo.NewMemoryChatRepository(), tailorRepo, notifier), tailor
}

func TestStartConversationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, tailor := newChatFixture(t, nil)

	first, err := uc.StartConversation(ctx, "customer-1", tailor.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"customer-1", "tailor-user-1"}, first.Participants)

	second, err := uc.StartConversation(ctx, "customer-1", tailor.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	conversations, err := uc.ListMyConversations(ctx, "customer-1")
	require.NoError(t, err)
	assert.Len(t, conversations, 1)
}

func TestStartConversationUnknownTailor(t *testing.T) {
	uc, _ := newChatFixture(t, nil)
	_, err := uc.StartConversation(context.Background(), "customer-1", "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageUpdatesConversationAndNotifies(t *testing.T) {
	ctx := context.Background()
	notifier := &capturingNotifier{}
	uc, tailor := newChatFixture(t, notifier)

	conversation, err := uc.StartConversation(ctx, "customer-1", tailor.ID)
	require.NoError(t, err)

	message, err := uc.SendMessage(ctx, "customer-1", conversation.ID, SendMessageInput{
		Content: "Do you take rush orders?",
	})
	require.NoError(t, err)
	assert.Equal(t, "text", message.Type)

	// The recipient gets a push, the sender does not.
	require.Len(t, notifier.sent["tailor-user-1"], 1)
	assert.Empty(t, notifier.sent["customer-1"])

	var payload struct {
		Type    string          `json:"type"`
		Message *entity.Message `json:"message"`
	}
	require.NoError(t, json.Unmarshal(notifier.sent["tailor-user-1"][0], &payload))
	assert.Equal(t, "new_message", payload.Type)
	assert.Equal(t, "Do you take rush orders?", payload.Message.Content)

	conversations, err := uc.ListMyConversations(ctx, "tailor-user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Do you take rush orders?", conversations[0].LastMessage)
	assert.Equal(t, 1, conversations[0].UnreadCount["tailor-user-1"])
}

func TestListMessagesClearsReaderUnreadCount(t *testing.T) {
	ctx := context.Background()
	uc, tailor := newChatFixture(t, nil)

	conversation, err := uc.StartConversation(ctx, "customer-1", tailor.ID)
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "customer-1", conversation.ID, SendMessageInput{Content: "hello"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, "customer-1", conversation.ID, SendMessageInput{Content: "anyone there?"})
	require.NoError(t, err)

	messages, total, err := uc.ListMessages(ctx, "tailor-user-1", conversation.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.EqualValues(t, 2, total)

	conversations, err := uc.ListMyConversations(ctx, "tailor-user-1")
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 0, conversations[0].UnreadCount["tailor-user-1"])
}

func TestConversationAccessLimitedToParticipants(t *testing.T) {
	ctx := context.Background()
	uc, tailor := newChatFixture(t, nil)

	conversation, err := uc.StartConversation(ctx, "customer-1", tailor.ID)
	require.NoError(t, err)

	_, _, err = uc.ListMessages(ctx, "eavesdropper", conversation.ID, 50, 0)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.SendMessage(ctx, "eavesdropper", conversation.ID, SendMessageInput{Content: "hi"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
