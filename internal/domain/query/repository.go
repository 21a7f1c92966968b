package query

import (
	"context"
	"errors"

	vo "github.com/ecoride/helpdesk/internal/domain/query/valueobjects"
)

// ErrNotFound is returned by repositories when the referenced query does not exist.
var ErrNotFound = errors.New("query not found")

// ErrVersionConflict is returned when an update lost an optimistic
// concurrency race: another writer committed first. The losing call is
// rejected rather than silently overwriting.
var ErrVersionConflict = errors.New("query was modified concurrently")

// Filter narrows query listings. Search matches case-insensitively against
// query text, response text, and the submitting customer's display name.
// CustomerID of zero means all customers (admin view).
type Filter struct {
	Status     *vo.QueryStatus
	Search     string
	CustomerID uint
	Page       int
	PageSize   int
}

type Repository interface {
	Save(ctx context.Context, q *Query) error

	// Update persists a mutated query, guarded by its previous version.
	// Returns ErrVersionConflict when a concurrent writer got there first.
	Update(ctx context.Context, q *Query) error

	GetByID(ctx context.Context, id uint) (*Query, error)

	// List returns queries in creation-descending order with the total count
	// before pagination.
	List(ctx context.Context, filter Filter) ([]*Query, int64, error)
}

// NumberGenerator produces human-facing query reference numbers.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
