// Package chat holds the support conversation aggregate: customer chat
// threads and their append-only message history.
package chat

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTitle is the placeholder given to a conversation until the first
// substantive customer message names it.
const DefaultTitle = "New Conversation"

// maxTitleLength caps auto-generated titles; longer first messages are
// truncated with an ellipsis marker.
const maxTitleLength = 50

type Conversation struct {
	id         uint
	customerID uint
	title      string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewConversation(customerID uint, title string) (*Conversation, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	now := time.Now()
	return &Conversation{
		customerID: customerID,
		title:      title,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructConversation(
	id uint,
	customerID uint,
	title string,
	createdAt, updatedAt time.Time,
) (*Conversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Conversation{
		id:         id,
		customerID: customerID,
		title:      title,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Conversation) ID() uint {
	return c.id
}

func (c *Conversation) CustomerID() uint {
	return c.customerID
}

func (c *Conversation) Title() string {
	return c.title
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Conversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// RenameFromFirstMessage derives the title from the first substantive
// customer message, but only while the conversation still carries its
// placeholder title. Any later message is a no-op. Returns whether the
// title changed.
func (c *Conversation) RenameFromFirstMessage(messageText, placeholderTitle string) bool {
	if placeholderTitle == "" {
		placeholderTitle = DefaultTitle
	}
	if c.title != placeholderTitle {
		return false
	}

	messageText = strings.TrimSpace(messageText)
	if messageText == "" {
		return false
	}

	c.title = TitleFromMessage(messageText)
	c.updatedAt = time.Now()
	return true
}

// Touch refreshes the activity timestamp; called when a message is appended.
func (c *Conversation) Touch() {
	c.updatedAt = time.Now()
}

// TitleFromMessage truncates message text into a display title: the first 50
// characters plus an ellipsis marker when longer. Counts runes, not bytes,
// so multibyte text is never cut mid-character.
func TitleFromMessage(text string) string {
	runes := []rune(text)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength]) + "..."
	}
	return text
}
