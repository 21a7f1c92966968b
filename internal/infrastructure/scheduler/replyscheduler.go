// Package scheduler provides the delayed one-shot execution used by the chat
// assistant's automated replies.
package scheduler

import (
	"sync"
	"time"

	"github.com/ecoride/helpdesk/internal/shared/goroutine"
	"github.com/ecoride/helpdesk/internal/shared/logger"
)

// ReplyScheduler runs deferred replies. Every Schedule call is independent:
// a conversation can hold several pending replies at once, and each fires on
// its own timer in scheduling order when the delays are equal.
type ReplyScheduler interface {
	// Schedule runs fn after the delay.
	Schedule(conversationID uint, delay time.Duration, fn func())

	// Cancel drops every pending reply for the conversation. Only used
	// when the conversation itself goes away.
	Cancel(conversationID uint)

	// Stop cancels everything pending. Used on shutdown.
	Stop()
}

type timerScheduler struct {
	mu     sync.Mutex
	nextID uint64
	timers map[uint]map[uint64]*time.Timer
	logger logger.Interface
}

func NewTimerScheduler(log logger.Interface) ReplyScheduler {
	return &timerScheduler{
		timers: make(map[uint]map[uint64]*time.Timer),
		logger: log,
	}
}

func (s *timerScheduler) Schedule(conversationID uint, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	pending, ok := s.timers[conversationID]
	if !ok {
		pending = make(map[uint64]*time.Timer)
		s.timers[conversationID] = pending
	}

	pending[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if pending, ok := s.timers[conversationID]; ok {
			delete(pending, id)
			if len(pending) == 0 {
				delete(s.timers, conversationID)
			}
		}
		s.mu.Unlock()

		goroutine.SafeGo(s.logger, "scheduled_reply", fn)
	})
}

func (s *timerScheduler) Cancel(conversationID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, timer := range s.timers[conversationID] {
		timer.Stop()
	}
	delete(s.timers, conversationID)
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, pending := range s.timers {
		for _, timer := range pending {
			timer.Stop()
		}
		delete(s.timers, id)
	}
}
