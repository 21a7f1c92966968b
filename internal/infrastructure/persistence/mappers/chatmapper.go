package mappers

import (
	"fmt"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
)

// ChatMapper handles the conversion between chat domain entities and their
// persistence models.
type ChatMapper interface {
	// ConversationToModel converts a conversation domain entity to a persistence model.
	ConversationToModel(c *chat.Conversation) *models.ConversationModel

	// ConversationToDomain converts a conversation persistence model to a domain entity.
	ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error)

	// MessageToModel converts a message domain entity to a persistence model.
	MessageToModel(msg *chat.Message) *models.MessageModel

	// MessageToDomain converts a message persistence model to a domain entity.
	MessageToDomain(model *models.MessageModel) (*chat.Message, error)
}

// ChatMapperImpl is the concrete implementation of ChatMapper.
type ChatMapperImpl struct{}

// NewChatMapper creates a new ChatMapper.
func NewChatMapper() ChatMapper {
	return &ChatMapperImpl{}
}

func (m *ChatMapperImpl) ConversationToModel(c *chat.Conversation) *models.ConversationModel {
	return &models.ConversationModel{
		ID:         c.ID(),
		CustomerID: c.CustomerID(),
		Title:      c.Title(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
		UpdatedAt:  c.UpdatedAt().UnixMilli(),
	}
}

func (m *ChatMapperImpl) ConversationToDomain(model *models.ConversationModel) (*chat.Conversation, error) {
	conv, err := chat.ReconstructConversation(
		model.ID,
		model.CustomerID,
		model.Title,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct conversation %d: %w", model.ID, err)
	}
	return conv, nil
}

func (m *ChatMapperImpl) MessageToModel(msg *chat.Message) *models.MessageModel {
	model := &models.MessageModel{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		SenderType:     msg.Sender().String(),
		MessageText:    msg.Text(),
		CreatedAt:      msg.CreatedAt().UnixMilli(),
	}

	if att := msg.Attachment(); att != nil {
		fileName := att.FileName
		fileURL := att.FileURL
		model.FileName = &fileName
		model.FileURL = &fileURL
	}

	return model
}

func (m *ChatMapperImpl) MessageToDomain(model *models.MessageModel) (*chat.Message, error) {
	var attachment *chat.Attachment
	if model.FileName != nil && model.FileURL != nil {
		attachment = &chat.Attachment{
			FileName: *model.FileName,
			FileURL:  *model.FileURL,
		}
	}

	msg, err := chat.ReconstructMessage(
		model.ID,
		model.ConversationID,
		chat.SenderType(model.SenderType),
		model.MessageText,
		attachment,
		time.UnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message %d: %w", model.ID, err)
	}
	return msg, nil
}
