package knowledge

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when the referenced entry does not exist.
var ErrNotFound = errors.New("knowledge entry not found")

// ListFilter narrows admin listings. Search matches question, answer and
// category case-insensitively.
type ListFilter struct {
	Search string
}

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Entry, error)

	// FindActive returns active entries in creation order (id ascending).
	// This is the encounter order the matcher depends on.
	FindActive(ctx context.Context) ([]*Entry, error)

	// ListActive returns active entries ordered by category ascending, then
	// creation order. Used by the help center.
	ListActive(ctx context.Context) ([]*Entry, error)

	// List returns all entries (active and inactive) in creation order,
	// optionally filtered.
	List(ctx context.Context, filter ListFilter) ([]*Entry, error)
}
