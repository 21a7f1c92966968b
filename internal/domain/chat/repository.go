package chat

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when the referenced conversation
// or message does not exist.
var ErrNotFound = errors.New("conversation not found")

type ConversationRepository interface {
	Save(ctx context.Context, conversation *Conversation) error
	Update(ctx context.Context, conversation *Conversation) error
	GetByID(ctx context.Context, id uint) (*Conversation, error)

	// ListByCustomer returns the customer's conversations, most recently
	// active first.
	ListByCustomer(ctx context.Context, customerID uint) ([]*Conversation, error)
}

type MessageRepository interface {
	Save(ctx context.Context, message *Message) error

	// ListByConversation returns messages in chronological order, with
	// insertion sequence breaking timestamp ties. The ordering is stable:
	// re-fetching without an intervening append yields identical output.
	ListByConversation(ctx context.Context, conversationID uint) ([]*Message, error)
}
