package usecases

import (
	"context"

	"github.com/ecoride/helpdesk/internal/domain/query"
	"github.com/ecoride/helpdesk/internal/domain/user"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

type mockQueryRepository struct {
	SaveFunc    func(ctx context.Context, q *query.Query) error
	UpdateFunc  func(ctx context.Context, q *query.Query) error
	GetByIDFunc func(ctx context.Context, id uint) (*query.Query, error)
	ListFunc    func(ctx context.Context, filter query.Filter) ([]*query.Query, int64, error)
}

func (m *mockQueryRepository) Save(ctx context.Context, q *query.Query) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, q)
	}
	return nil
}

func (m *mockQueryRepository) Update(ctx context.Context, q *query.Query) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	return nil
}

func (m *mockQueryRepository) GetByID(ctx context.Context, id uint) (*query.Query, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, query.ErrNotFound
}

func (m *mockQueryRepository) List(ctx context.Context, filter query.Filter) ([]*query.Query, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "Q-20260901-0001", nil
}

type mockDirectory struct {
	GetProfileFunc func(ctx context.Context, userID uint) (*user.Profile, error)
}

func (m *mockDirectory) GetProfile(ctx context.Context, userID uint) (*user.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, user.ErrNotFound
}

type mockNotifier struct {
	SendFunc func(to, displayName, queryNumber, responseText string) error
	sent     chan struct{}
}

func newMockNotifier(send func(to, displayName, queryNumber, responseText string) error) *mockNotifier {
	return &mockNotifier{SendFunc: send, sent: make(chan struct{}, 1)}
}

func (m *mockNotifier) SendQueryAnsweredEmail(to, displayName, queryNumber, responseText string) error {
	var err error
	if m.SendFunc != nil {
		err = m.SendFunc(to, displayName, queryNumber, responseText)
	}
	select {
	case m.sent <- struct{}{}:
	default:
	}
	return err
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
