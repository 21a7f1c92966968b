// Package knowledge holds the knowledge base aggregate: question/answer
// entries served by the help center and consumed by the chat auto-responder.
package knowledge

import (
	"fmt"
	"strings"
	"time"
)

type Entry struct {
	id        uint
	question  string
	answer    string
	category  string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewEntry creates an active entry. Question and answer must be non-blank
// after trimming. A blank category is stored as absent and surfaced by the
// help center as the uncategorized bucket.
func NewEntry(question, answer, category string) (*Entry, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	category = strings.TrimSpace(category)

	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	now := time.Now()
	return &Entry{
		question:  question,
		answer:    answer,
		category:  category,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEntry(
	id uint,
	question string,
	answer string,
	category string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	return &Entry{
		id:        id,
		question:  question,
		answer:    answer,
		category:  category,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Question() string {
	return e.question
}

func (e *Entry) Answer() string {
	return e.answer
}

// Category returns the raw category label; empty means uncategorized.
func (e *Entry) Category() string {
	return e.category
}

func (e *Entry) HasCategory() bool {
	return e.category != ""
}

func (e *Entry) Active() bool {
	return e.active
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// SetActive toggles visibility. Re-applying the current state is a no-op
// and never an error.
func (e *Entry) SetActive(active bool) {
	if e.active == active {
		return
	}
	e.active = active
	e.updatedAt = time.Now()
}

// UpdateContent replaces the entry text and category, keeping the non-blank
// invariant on question and answer.
func (e *Entry) UpdateContent(question, answer, category string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return fmt.Errorf("question is required")
	}
	if answer == "" {
		return fmt.Errorf("answer is required")
	}

	e.question = question
	e.answer = answer
	e.category = strings.TrimSpace(category)
	e.updatedAt = time.Now()
	return nil
}
