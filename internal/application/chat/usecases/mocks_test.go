package usecases

import (
	"context"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/chat"
	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type mockConversationRepository struct {
	SaveFunc           func(ctx context.Context, conversation *chat.Conversation) error
	UpdateFunc         func(ctx context.Context, conversation *chat.Conversation) error
	GetByIDFunc        func(ctx context.Context, id uint) (*chat.Conversation, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]*chat.Conversation, error)
}

func (m *mockConversationRepository) Save(ctx context.Context, conversation *chat.Conversation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, conversation)
	}
	return nil
}

func (m *mockConversationRepository) Update(ctx context.Context, conversation *chat.Conversation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, conversation)
	}
	return nil
}

func (m *mockConversationRepository) GetByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, chat.ErrNotFound
}

func (m *mockConversationRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*chat.Conversation, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

type mockMessageRepository struct {
	SaveFunc               func(ctx context.Context, message *chat.Message) error
	ListByConversationFunc func(ctx context.Context, conversationID uint) ([]*chat.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, message *chat.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, message)
	}
	return nil
}

func (m *mockMessageRepository) ListByConversation(ctx context.Context, conversationID uint) ([]*chat.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return nil, nil
}

type mockKnowledgeRepository struct {
	FindActiveFunc func(ctx context.Context) ([]*knowledge.Entry, error)
}

func (m *mockKnowledgeRepository) Save(ctx context.Context, entry *knowledge.Entry) error   { return nil }
func (m *mockKnowledgeRepository) Update(ctx context.Context, entry *knowledge.Entry) error { return nil }
func (m *mockKnowledgeRepository) Delete(ctx context.Context, id uint) error                { return nil }
func (m *mockKnowledgeRepository) GetByID(ctx context.Context, id uint) (*knowledge.Entry, error) {
	return nil, knowledge.ErrNotFound
}

func (m *mockKnowledgeRepository) FindActive(ctx context.Context) ([]*knowledge.Entry, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockKnowledgeRepository) ListActive(ctx context.Context) ([]*knowledge.Entry, error) {
	return nil, nil
}

func (m *mockKnowledgeRepository) List(ctx context.Context, filter knowledge.ListFilter) ([]*knowledge.Entry, error) {
	return nil, nil
}

// manualScheduler records scheduled replies and fires them on demand, so
// tests control the delivery instant. Replies queue up per conversation and
// fire oldest first.
type manualScheduler struct {
	pending   map[uint][]func()
	cancelled []uint
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[uint][]func())}
}

func (s *manualScheduler) Schedule(conversationID uint, delay time.Duration, fn func()) {
	s.pending[conversationID] = append(s.pending[conversationID], fn)
}

func (s *manualScheduler) Cancel(conversationID uint) {
	s.cancelled = append(s.cancelled, conversationID)
	delete(s.pending, conversationID)
}

func (s *manualScheduler) Fire(conversationID uint) bool {
	queue := s.pending[conversationID]
	if len(queue) == 0 {
		return false
	}
	fn := queue[0]
	if len(queue) == 1 {
		delete(s.pending, conversationID)
	} else {
		s.pending[conversationID] = queue[1:]
	}
	fn()
	return true
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
