package usecases

import (
	"context"
	"time"

	"github.com/ecoride/helpdesk/internal/domain/knowledge"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

func testTime() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

type mockKnowledgeRepository struct {
	SaveFunc       func(ctx context.Context, entry *knowledge.Entry) error
	UpdateFunc     func(ctx context.Context, entry *knowledge.Entry) error
	DeleteFunc     func(ctx context.Context, id uint) error
	GetByIDFunc    func(ctx context.Context, id uint) (*knowledge.Entry, error)
	FindActiveFunc func(ctx context.Context) ([]*knowledge.Entry, error)
	ListActiveFunc func(ctx context.Context) ([]*knowledge.Entry, error)
	ListFunc       func(ctx context.Context, filter knowledge.ListFilter) ([]*knowledge.Entry, error)
}

func (m *mockKnowledgeRepository) Save(ctx context.Context, entry *knowledge.Entry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockKnowledgeRepository) Update(ctx context.Context, entry *knowledge.Entry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	return nil
}

func (m *mockKnowledgeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockKnowledgeRepository) GetByID(ctx context.Context, id uint) (*knowledge.Entry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, knowledge.ErrNotFound
}

func (m *mockKnowledgeRepository) FindActive(ctx context.Context) ([]*knowledge.Entry, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockKnowledgeRepository) ListActive(ctx context.Context) ([]*knowledge.Entry, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockKnowledgeRepository) List(ctx context.Context, filter knowledge.ListFilter) ([]*knowledge.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
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
