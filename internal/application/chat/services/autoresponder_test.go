package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

const fallback = "Thank you for your message. A support agent will review your inquiry and respond shortly. In the meantime, you can check our Help Center for immediate answers to common questions."

type stubConversationRepo struct {
	conversation *chat.Conversation
	getErr       error
	updated      bool
}

func (s *stubConversationRepo) Save(ctx context.Context, c *chat.Conversation) error { return nil }
func (s *stubConversationRepo) Update(ctx context.Context, c *chat.Conversation) error {
	s.updated = true
	return nil
}

func (s *stubConversationRepo) GetByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.conversation, nil
}

func (s *stubConversationRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*chat.Conversation, error) {
	return nil, nil
}

type stubMessageRepo struct {
	saved   []*chat.Message
	saveErr error
	nextID  uint
}

func (s *stubMessageRepo) Save(ctx context.Context, m *chat.Message) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.nextID++
	if err := m.SetID(s.nextID); err != nil {
		return err
	}
	s.saved = append(s.saved, m)
	return nil
}

func (s *stubMessageRepo) ListByConversation(ctx context.Context, conversationID uint) ([]*chat.Message, error) {
	return nil, nil
}

type stubKnowledgeRepo struct {
	entries []*knowledge.Entry
	findErr error
}

func (s *stubKnowledgeRepo) Save(ctx context.Context, e *knowledge.Entry) error   { return nil }
func (s *stubKnowledgeRepo) Update(ctx context.Context, e *knowledge.Entry) error { return nil }
func (s *stubKnowledgeRepo) Delete(ctx context.Context, id uint) error            { return nil }
func (s *stubKnowledgeRepo) GetByID(ctx context.Context, id uint) (*knowledge.Entry, error) {
	return nil, knowledge.ErrNotFound
}

func (s *stubKnowledgeRepo) FindActive(ctx context.Context) ([]*knowledge.Entry, error) {
	return s.entries, s.findErr
}

func (s *stubKnowledgeRepo) ListActive(ctx context.Context) ([]*knowledge.Entry, error) {
	return s.entries, nil
}

func (s *stubKnowledgeRepo) List(ctx context.Context, f knowledge.ListFilter) ([]*knowledge.Entry, error) {
	return s.entries, nil
}

type immediateScheduler struct {
	cancelled []uint
}

func (s *immediateScheduler) Schedule(conversationID uint, delay time.Duration, fn func()) { fn() }
func (s *immediateScheduler) Cancel(conversationID uint) {
	s.cancelled = append(s.cancelled, conversationID)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func makeConversation(t *testing.T) *chat.Conversation {
	conv, err := chat.ReconstructConversation(1, 10, "Help", time.Now(), time.Now())
	require.NoError(t, err)
	return conv
}

func makeEntry(t *testing.T, id uint, question, answer string) *knowledge.Entry {
	entry, err := knowledge.ReconstructEntry(id, question, answer, "", true, time.Now(), time.Now())
	require.NoError(t, err)
	return entry
}

func TestAutoResponder_ScheduleReply(t *testing.T) {
	t.Run("matched entry answers, conversation touched", func(t *testing.T) {
		convRepo := &stubConversationRepo{conversation: makeConversation(t)}
		msgRepo := &stubMessageRepo{}
		kbRepo := &stubKnowledgeRepo{entries: []*knowledge.Entry{
			makeEntry(t, 1, "Is there a helmet requirement for riders?", "Helmets are required in all service areas."),
		}}

		responder := NewAutoResponder(kbRepo, convRepo, msgRepo, &immediateScheduler{}, fallback, time.Second, nopLogger{})
		responder.ScheduleReply(1, "do I need a helmet")

		require.Len(t, msgRepo.saved, 1)
		assert.Equal(t, "Helmets are required in all service areas.", msgRepo.saved[0].Text())
		assert.Equal(t, chat.SenderSystem, msgRepo.saved[0].Sender())
		assert.True(t, convRepo.updated)
	})

	t.Run("missing conversation is a silent no-op", func(t *testing.T) {
		convRepo := &stubConversationRepo{getErr: chat.ErrNotFound}
		msgRepo := &stubMessageRepo{}

		responder := NewAutoResponder(&stubKnowledgeRepo{}, convRepo, msgRepo, &immediateScheduler{}, fallback, time.Second, nopLogger{})
		responder.ScheduleReply(1, "anything")

		assert.Empty(t, msgRepo.saved)
	})

	t.Run("knowledge failure degrades to fallback", func(t *testing.T) {
		convRepo := &stubConversationRepo{conversation: makeConversation(t)}
		msgRepo := &stubMessageRepo{}
		kbRepo := &stubKnowledgeRepo{findErr: errors.New("db down")}

		responder := NewAutoResponder(kbRepo, convRepo, msgRepo, &immediateScheduler{}, fallback, time.Second, nopLogger{})
		responder.ScheduleReply(1, "do I need a helmet")

		require.Len(t, msgRepo.saved, 1)
		assert.Equal(t, fallback, msgRepo.saved[0].Text())
	})

	t.Run("save failure is swallowed", func(t *testing.T) {
		convRepo := &stubConversationRepo{conversation: makeConversation(t)}
		msgRepo := &stubMessageRepo{saveErr: errors.New("disk full")}

		responder := NewAutoResponder(&stubKnowledgeRepo{}, convRepo, msgRepo, &immediateScheduler{}, fallback, time.Second, nopLogger{})
		responder.ScheduleReply(1, "anything")

		assert.Empty(t, msgRepo.saved)
		assert.False(t, convRepo.updated)
	})

	t.Run("cancel forwards to the scheduler", func(t *testing.T) {
		sched := &immediateScheduler{}
		responder := NewAutoResponder(&stubKnowledgeRepo{}, &stubConversationRepo{}, &stubMessageRepo{}, sched, fallback, time.Second, nopLogger{})

		responder.CancelPending(7)

		assert.Equal(t, []uint{7}, sched.cancelled)
	})
}
