package dto

import (
	"time"

	"github.com/ecoride/helpdesk/internal/domain/chat"
)

type ConversationDTO struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customer_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AttachmentDTO struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url"`
}

type MessageDTO struct {
	ID             uint           `json:"id"`
	ConversationID uint           `json:"conversation_id"`
	Sender         string         `json:"sender"`
	Text           string         `json:"text"`
	Attachment     *AttachmentDTO `json:"attachment,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func ToConversationDTO(c *chat.Conversation) *ConversationDTO {
	if c == nil {
		return nil
	}
	return &ConversationDTO{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		Title:      c.Title(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func ToConversationDTOs(conversations []*chat.Conversation) []ConversationDTO {
	dtos := make([]ConversationDTO, 0, len(conversations))
	for _, c := range conversations {
		dtos = append(dtos, *ToConversationDTO(c))
	}
	return dtos
}

func ToMessageDTO(m *chat.Message) *MessageDTO {
	if m == nil {
		return nil
	}

	d := &MessageDTO{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		Sender:         m.Sender().String(),
		Text:           m.Text(),
		CreatedAt:      m.CreatedAt(),
	}

	if att := m.Attachment(); att != nil {
		d.Attachment = &AttachmentDTO{
			FileName: att.FileName,
			FileURL:  att.FileURL,
		}
	}

	return d
}

func ToMessageDTOs(messages []*chat.Message) []MessageDTO {
	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, *ToMessageDTO(m))
	}
	return dtos
}
