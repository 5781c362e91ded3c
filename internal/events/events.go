// Package events carries the in-process domain events of the API. The only
// event today is CurriculumTouched: child-entity writes publish it and a
// single subscriber bumps the parent curriculum's updated_at, instead of
// every handler repeating the timestamp update.
package events

import (
	"context"
	"sync"
	"time"
)

// CurriculumTouched signals that a child entity of the curriculum changed.
type CurriculumTouched struct {
	CurriculumID string
	At           time.Time
}

type TouchedHandler func(ctx context.Context, e CurriculumTouched)

// Bus is a synchronous in-process dispatcher. Publish runs every handler
// on the caller's goroutine, so repository errors inside handlers stay
// inside the request that caused them.
type Bus struct {
	mu       sync.RWMutex
	handlers []TouchedHandler
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) SubscribeTouched(h TouchedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) PublishTouched(ctx context.Context, e CurriculumTouched) {
	b.mu.RLock()
	handlers := make([]TouchedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, e)
	}
}
