package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	apperrors "github.com/ecoride/helpdesk/internal/shared/errors"
)

const testWelcome = "Hello! I'm your EcoRide support assistant. How can I help you today?"

func TestStartConversationUseCase_Execute(t *testing.T) {
	t.Run("creates conversation with greeting", func(t *testing.T) {
		var savedMessage *chat.Message
		conversationRepo := &mockConversationRepository{
			SaveFunc: func(ctx context.Context, conversation *chat.Conversation) error {
				return conversation.SetID(1)
			},
		}
		messageRepo := &mockMessageRepository{
			SaveFunc: func(ctx context.Context, message *chat.Message) error {
				require.NoError(t, message.SetID(1))
				savedMessage = message
				return nil
			},
		}

		useCase := NewStartConversationUseCase(
			conversationRepo, messageRepo, chat.DefaultTitle, testWelcome, &mockLogger{})

		result, err := useCase.Execute(context.Background(), StartConversationCommand{CustomerID: 10})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.Conversation.ID)
		assert.Equal(t, chat.DefaultTitle, result.Conversation.Title)
		assert.Equal(t, testWelcome, result.Welcome.Text)
		assert.Equal(t, "system", result.Welcome.Sender)

		require.NotNil(t, savedMessage)
		assert.Equal(t, chat.SenderSystem, savedMessage.Sender())
	})

	t.Run("missing customer is rejected", func(t *testing.T) {
		useCase := NewStartConversationUseCase(
			&mockConversationRepository{}, &mockMessageRepository{}, chat.DefaultTitle, testWelcome, &mockLogger{})

		_, err := useCase.Execute(context.Background(), StartConversationCommand{CustomerID: 0})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestListMessagesUseCase_Execute(t *testing.T) {
	conversation := reconstructConversation(t, 1, 10, "Battery help")

	conversationRepo := &mockConversationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*chat.Conversation, error) {
			if id == 1 {
				return conversation, nil
			}
			return nil, chat.ErrNotFound
		},
	}

	t.Run("owner can read the thread", func(t *testing.T) {
		msg, err := chat.NewMessage(1, chat.SenderCustomer, "hello", nil)
		require.NoError(t, err)
		require.NoError(t, msg.SetID(5))

		messageRepo := &mockMessageRepository{
			ListByConversationFunc: func(ctx context.Context, conversationID uint) ([]*chat.Message, error) {
				return []*chat.Message{msg}, nil
			},
		}

		useCase := NewListMessagesUseCase(conversationRepo, messageRepo, &mockLogger{})
		messages, err := useCase.Execute(context.Background(), ListMessagesQuery{
			ConversationID: 1, RequesterID: 10,
		})

		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "hello", messages[0].Text)
	})

	t.Run("admin can read any thread", func(t *testing.T) {
		useCase := NewListMessagesUseCase(conversationRepo, &mockMessageRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ListMessagesQuery{
			ConversationID: 1, RequesterID: 999, IsAdmin: true,
		})
		require.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		useCase := NewListMessagesUseCase(conversationRepo, &mockMessageRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ListMessagesQuery{
			ConversationID: 1, RequesterID: 999,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("missing conversation yields not found", func(t *testing.T) {
		useCase := NewListMessagesUseCase(conversationRepo, &mockMessageRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ListMessagesQuery{
			ConversationID: 42, RequesterID: 10,
		})

		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
