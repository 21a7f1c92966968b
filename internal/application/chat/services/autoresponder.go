// Package services holds chat collaborators that span use cases.
package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

// ReplyScheduler defers replies. Each scheduled reply is independent; Cancel
// tears down everything pending for a conversation. The production
// implementation is timer based; tests supply a manual one.
type ReplyScheduler interface {
	Schedule(conversationID uint, delay time.Duration, fn func())
	Cancel(conversationID uint)
}

// AutoResponder produces the delayed automated reply to a customer message.
// The reply text comes from the first active knowledge entry that matches;
// otherwise the configured fallback. The reply is best-effort: any failure
// after the delay is logged and dropped, never surfaced to the customer.
type AutoResponder struct {
	knowledgeRepo    knowledge.Repository
	conversationRepo chat.ConversationRepository
	messageRepo      chat.MessageRepository
	scheduler        ReplyScheduler
	fallbackMessage  string
	delay            time.Duration
	logger           logger.Interface
}

func NewAutoResponder(
	knowledgeRepo knowledge.Repository,
	conversationRepo chat.ConversationRepository,
	messageRepo chat.MessageRepository,
	scheduler ReplyScheduler,
	fallbackMessage string,
	delay time.Duration,
	logger logger.Interface,
) *AutoResponder {
	return &AutoResponder{
		knowledgeRepo:    knowledgeRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		scheduler:        scheduler,
		fallbackMessage:  fallbackMessage,
		delay:            delay,
		logger:           logger,
	}
}

// ScheduleReply queues an automated answer to the customer's message. Every
// message gets its own answer; messages sent in quick succession each carry
// a pending reply of their own.
func (a *AutoResponder) ScheduleReply(conversationID uint, customerMessage string) {
	a.scheduler.Schedule(conversationID, a.delay, func() {
		a.deliverReply(context.Background(), conversationID, customerMessage)
	})
}

// CancelPending drops every pending automated reply for a conversation.
// Used when the conversation itself goes away.
func (a *AutoResponder) CancelPending(conversationID uint) {
	a.scheduler.Cancel(conversationID)
}

func (a *AutoResponder) deliverReply(ctx context.Context, conversationID uint, customerMessage string) {
	conversation, err := a.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		if stderrors.Is(err, chat.ErrNotFound) {
			// Conversation disappeared while the reply was pending.
			a.logger.Warnw("skipping automated reply for missing conversation",
				"conversation_id", conversationID)
			return
		}
		a.logger.Errorw("failed to load conversation for automated reply",
			"error", err, "conversation_id", conversationID)
		return
	}

	replyText := a.resolveReply(ctx, customerMessage)

	reply, err := chat.NewMessage(conversationID, chat.SenderSystem, replyText, nil)
	if err != nil {
		a.logger.Errorw("failed to build automated reply",
			"error", err, "conversation_id", conversationID)
		return
	}

	if err := a.messageRepo.Save(ctx, reply); err != nil {
		a.logger.Errorw("failed to save automated reply",
			"error", err, "conversation_id", conversationID)
		return
	}

	conversation.Touch()
	if err := a.conversationRepo.Update(ctx, conversation); err != nil {
		a.logger.Errorw("failed to touch conversation after automated reply",
			"error", err, "conversation_id", conversationID)
	}
}

// resolveReply picks the answer text. A knowledge lookup failure degrades to
// the fallback rather than suppressing the reply.
func (a *AutoResponder) resolveReply(ctx context.Context, customerMessage string) string {
	entries, err := a.knowledgeRepo.FindActive(ctx)
	if err != nil {
		a.logger.Errorw("failed to load knowledge entries for automated reply", "error", err)
		return a.fallbackMessage
	}

	if match := knowledge.Match(customerMessage, entries); match != nil {
		return match.Answer()
	}
	return a.fallbackMessage
}
