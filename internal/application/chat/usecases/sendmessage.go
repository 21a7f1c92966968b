package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ecoride/helpdesk/internal/application/chat/dto"
	"github.com/ecoride/helpdesk/internal/application/chat/services"
	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/shared/errors"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type SendMessageCommand struct {
	ConversationID uint
	CustomerID     uint
	Text           string
	Attachment     *dto.AttachmentDTO
}

type SendMessageUseCase struct {
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	autoResponder    *services.AutoResponder
	defaultTitle     string
	logger           logger.Interface
}

func NewSendMessageUseCase(
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	autoResponder *services.AutoResponder,
	defaultTitle string,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		autoResponder:    autoResponder,
		defaultTitle:     defaultTitle,
		logger:           logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing send message use case",
		"conversation_id", cmd.ConversationID, "customer_id", cmd.CustomerID)

	conversation, err := uc.conversationRepo.GetByID(ctx, cmd.ConversationID)
	if err != nil {
		if stderrors.Is(err, chat.ErrNotFound) {
			return nil, errors.NewNotFoundError("conversation not found")
		}
		uc.logger.Errorw("failed to load conversation", "error", err, "conversation_id", cmd.ConversationID)
		return nil, errors.NewInternalError("failed to load conversation")
	}

	if conversation.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("conversation belongs to another customer")
	}

	typedText := strings.TrimSpace(cmd.Text)
	text := typedText
	var attachment *chat.Attachment
	if cmd.Attachment != nil {
		attachment = &chat.Attachment{
			FileName: cmd.Attachment.FileName,
			FileURL:  cmd.Attachment.FileURL,
		}
	}

	// An attachment-only message gets a placeholder body so the thread
	// always shows something readable.
	if text == "" {
		if attachment == nil {
			return nil, errors.NewValidationError("message text is required")
		}
		text = fmt.Sprintf("Uploaded file: %s", attachment.FileName)
	}

	message, err := chat.NewMessage(cmd.ConversationID, chat.SenderCustomer, text, attachment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save message", "error", err, "conversation_id", cmd.ConversationID)
		return nil, errors.NewInternalError("failed to send message")
	}

	// The first typed customer message names the conversation; an upload
	// placeholder never becomes the title.
	conversation.RenameFromFirstMessage(typedText, uc.defaultTitle)
	conversation.Touch()
	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		uc.logger.Errorw("failed to update conversation", "error", err, "conversation_id", cmd.ConversationID)
		return nil, errors.NewInternalError("failed to send message")
	}

	// The assistant only answers typed text; an upload alone gets no
	// canned reply.
	if typedText != "" {
		uc.autoResponder.ScheduleReply(cmd.ConversationID, typedText)
	}

	return dto.ToMessageDTO(message), nil
}
