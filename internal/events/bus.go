// Package events carries cache-invalidation signals between components.
package events

import (
	"slices"
	"sync"
)

// TypeRemotes marks cached remote collections as stale.
const TypeRemotes = "remotes"

// CacheReset announces that cached data for a repository is stale.
type CacheReset struct {
	RepoPath string
	Types    []string
}

// Includes reports whether the reset covers the given data type.
func (r CacheReset) Includes(dataType string) bool {
	return slices.Contains(r.Types, dataType)
}

// Bus is a process-wide publish/subscribe channel for cache-reset events.
// Handlers run synchronously on the publishing goroutine, so a mutation's
// invalidation completes before the mutating call returns.
type Bus struct {
	mu       sync.RWMutex
	handlers []func(CacheReset)
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for future cache-reset events.
func (b *Bus) Subscribe(handler func(CacheReset)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)
}

// Publish delivers the event to every subscribed handler.
func (b *Bus) Publish(event CacheReset) {
	b.mu.RLock()
	handlers := slices.Clone(b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
