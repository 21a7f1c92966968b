package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/ecoride/helpdesk/internal/infrastructure/persistence/models"
	db "github.com/ecoride/helpdesk/internal/shared/db"
)

type ConversationRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *ConversationRepository) Save(ctx context.Context, conversation *chat.Conversation) error {
	model := r.mapper.ConversationToModel(conversation)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	if err := conversation.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ConversationRepository) Update(ctx context.Context, conversation *chat.Conversation) error {
	model := r.mapper.ConversationToModel(conversation)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConversationModel{}).
		Where("id = ?", model.ID).
		Select("title", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return chat.ErrNotFound
	}

	return nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	var model models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chat.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return r.mapper.ConversationToDomain(&model)
}

func (r *ConversationRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*chat.Conversation, error) {
	var rows []models.ConversationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ?", customerID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	conversations := make([]*chat.Conversation, 0, len(rows))
	for i := range rows {
		conv, err := r.mapper.ConversationToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.ChatMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, message *chat.Message) error {
	model := r.mapper.MessageToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if err := message.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// ListByConversation orders by created_at with the autoincrement id breaking
// ties, which keeps same-millisecond appends in insertion order.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*chat.Message, error) {
	var rows []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*chat.Message, 0, len(rows))
	for i := range rows {
		msg, err := r.mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
