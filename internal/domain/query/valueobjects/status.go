// Package valueobjects defines value types for the customer query aggregate.
package valueobjects

import "fmt"

// QueryStatus is the lifecycle state of a customer query.
// open -> answered -> closed, where answered may re-enter itself when an
// administrator edits a response, and closed is terminal.
type QueryStatus string

const (
	StatusOpen     QueryStatus = "open"
	StatusAnswered QueryStatus = "answered"
	StatusClosed   QueryStatus = "closed"
)

var validQueryStatuses = map[QueryStatus]bool{
	StatusOpen:     true,
	StatusAnswered: true,
	StatusClosed:   true,
}

var queryStatusTransitions = map[QueryStatus][]QueryStatus{
	StatusOpen: {
		StatusAnswered,
		StatusClosed,
	},
	StatusAnswered: {
		StatusAnswered,
		StatusClosed,
	},
	StatusClosed: {},
}

func (s QueryStatus) String() string {
	return string(s)
}

func (s QueryStatus) IsValid() bool {
	return validQueryStatuses[s]
}

func (s QueryStatus) CanTransitionTo(newStatus QueryStatus) bool {
	allowed, ok := queryStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s QueryStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s QueryStatus) IsAnswered() bool {
	return s == StatusAnswered
}

func (s QueryStatus) IsClosed() bool {
	return s == StatusClosed
}

func NewQueryStatus(s string) (QueryStatus, error) {
	status := QueryStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid query status: %s", s)
	}
	return status, nil
}
