// Package session owns auth-state change notifications. The hub replaces the
// ambient "current session" global of a typical client app with a single
// owned object carrying an explicit subscribe/unsubscribe lifecycle.
package session

import (
	"sync"
	"time"
)

type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
	Refreshed EventKind = "refreshed"
)

type Event struct {
	Kind   EventKind
	UserID string
	At     time.Time
}

type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for future events and returns its unsubscribe
// function. Unsubscribing twice is harmless.
func (h *Hub) Subscribe(fn func(Event)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish delivers e to every current subscriber, synchronously and outside
// the hub lock so a subscriber may unsubscribe itself.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
