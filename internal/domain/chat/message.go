package chat

import (
	"fmt"
	"strings"
	"time"
)

type SenderType string

const (
	SenderCustomer SenderType = "customer"
	SenderSystem   SenderType = "system"
)

func (s SenderType) String() string {
	return string(s)
}

func (s SenderType) IsValid() bool {
	return s == SenderCustomer || s == SenderSystem
}

// Attachment carries the (fileName, fileURL) pair supplied by the upload
// collaborator. Both values are stored verbatim; content validation and the
// 10 MB size cap are enforced at upload time, not here.
type Attachment struct {
	FileName string
	FileURL  string
}

// Message is an immutable conversation entry. Once created it is never
// edited or deleted; ordering within a conversation is by creation time with
// insertion sequence breaking ties.
type Message struct {
	id             uint
	conversationID uint
	sender         SenderType
	text           string
	attachment     *Attachment
	createdAt      time.Time
}

func NewMessage(conversationID uint, sender SenderType, text string, attachment *Attachment) (*Message, error) {
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if !sender.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", sender)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text is required")
	}

	return &Message{
		conversationID: conversationID,
		sender:         sender,
		text:           text,
		attachment:     attachment,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	conversationID uint,
	sender SenderType,
	text string,
	attachment *Attachment,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation ID is required")
	}
	if !sender.IsValid() {
		return nil, fmt.Errorf("invalid sender type: %s", sender)
	}

	return &Message{
		id:             id,
		conversationID: conversationID,
		sender:         sender,
		text:           text,
		attachment:     attachment,
		createdAt:      createdAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) ConversationID() uint {
	return m.conversationID
}

func (m *Message) Sender() SenderType {
	return m.sender
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) Attachment() *Attachment {
	if m.attachment == nil {
		return nil
	}
	copied := *m.attachment
	return &copied
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
