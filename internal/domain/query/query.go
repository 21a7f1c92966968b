// Package query holds the customer query aggregate: support requests tracked
// through the open/answered/closed lifecycle.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/ecoride/helpdesk/internal/domain/query/valueobjects"
)

// ErrQueryClosed is returned when an operation is attempted on a closed
// query. Closed is terminal; callers must surface this, not swallow it.
var ErrQueryClosed = errors.New("query is closed")

// Attachment carries the (fileName, fileURL) pair supplied by the upload
// collaborator, stored verbatim.
type Attachment struct {
	FileName string
	FileURL  string
}

type Query struct {
	id           uint
	number       string
	customerID   uint
	queryText    string
	responseText *string
	status       vo.QueryStatus
	attachment   *Attachment
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewQuery creates a customer submission. Query text must be non-blank after
// trimming; new queries always start open.
func NewQuery(customerID uint, queryText string, attachment *Attachment) (*Query, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	queryText = strings.TrimSpace(queryText)
	if queryText == "" {
		return nil, fmt.Errorf("query text is required")
	}

	now := time.Now()
	return &Query{
		customerID: customerID,
		queryText:  queryText,
		status:     vo.StatusOpen,
		attachment: attachment,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructQuery(
	id uint,
	number string,
	customerID uint,
	queryText string,
	responseText *string,
	status vo.QueryStatus,
	attachment *Attachment,
	version int,
	createdAt, updatedAt time.Time,
) (*Query, error) {
	if id == 0 {
		return nil, fmt.Errorf("query ID cannot be zero")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Query{
		id:           id,
		number:       number,
		customerID:   customerID,
		queryText:    queryText,
		responseText: responseText,
		status:       status,
		attachment:   attachment,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (q *Query) ID() uint {
	return q.id
}

func (q *Query) Number() string {
	return q.number
}

func (q *Query) CustomerID() uint {
	return q.customerID
}

func (q *Query) QueryText() string {
	return q.queryText
}

func (q *Query) ResponseText() *string {
	return q.responseText
}

func (q *Query) Status() vo.QueryStatus {
	return q.status
}

func (q *Query) Attachment() *Attachment {
	if q.attachment == nil {
		return nil
	}
	copied := *q.attachment
	return &copied
}

func (q *Query) Version() int {
	return q.version
}

func (q *Query) CreatedAt() time.Time {
	return q.createdAt
}

func (q *Query) UpdatedAt() time.Time {
	return q.updatedAt
}

func (q *Query) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("query ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("query ID cannot be zero")
	}
	q.id = id
	return nil
}

func (q *Query) SetNumber(number string) error {
	if len(q.number) > 0 {
		return fmt.Errorf("query number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("query number cannot be empty")
	}
	q.number = number
	return nil
}

// Respond stores the administrator's answer and moves the query to answered.
// Responding to an answered query updates the stored text and stays in
// answered. Responding to a closed query fails with ErrQueryClosed.
func (q *Query) Respond(responseText string) error {
	responseText = strings.TrimSpace(responseText)
	if responseText == "" {
		return fmt.Errorf("response text is required")
	}

	if q.status.IsClosed() {
		return ErrQueryClosed
	}
	if !q.status.CanTransitionTo(vo.StatusAnswered) {
		return fmt.Errorf("cannot respond to query with status %s", q.status)
	}

	q.responseText = &responseText
	q.status = vo.StatusAnswered
	q.updatedAt = time.Now()
	q.version++

	return nil
}

// Close moves the query to its terminal state from open or answered.
// Closing an already-closed query is an error, never a silent no-op.
func (q *Query) Close() error {
	if q.status.IsClosed() {
		return ErrQueryClosed
	}
	if !q.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close query with status %s", q.status)
	}

	q.status = vo.StatusClosed
	q.updatedAt = time.Now()
	q.version++

	return nil
}

// CanBeViewedBy enforces read ownership: customers see only their own
// queries, administrators see all.
func (q *Query) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return q.customerID == userID
}
