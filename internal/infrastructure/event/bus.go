// Package event delivers storefront domain events to in-process subscribers.
package event

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/doorshop/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type subscription struct {
	handler shared.EventHandler
	types   []string // empty matches every event
}

func (s subscription) matches(eventType string) bool {
	return len(s.types) == 0 || slices.Contains(s.types, eventType)
}

// InMemoryEventBus dispatches synchronously, in subscription order.
// Events published while the bus is stopped are dropped.
type InMemoryEventBus struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *zap.Logger
	active atomic.Bool
}

// NewInMemoryEventBus creates a stopped bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryEventBus{logger: logger.Named("eventbus")}
}

// Publish hands every event to the matching handlers. Handler failures are logged, never returned:
// the state change behind the event is already committed.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.active.Load() {
		b.logger.Debug("event bus stopped, dropping events", zap.Int("count", len(events)))
		return nil
	}
	for _, event := range events {
		for _, h := range b.handlersFor(event.EventType()) {
			if err := b.deliver(ctx, h, event); err != nil {
				b.logger.Error("event handler failed",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe adds a handler for eventTypes, or for the handler's own EventTypes when none are given
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.mu.Lock()
	b.subs = append(b.subs, subscription{handler: handler, types: slices.Clone(eventTypes)})
	b.mu.Unlock()
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe drops every subscription of handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.handler == handler })
}

func (b *InMemoryEventBus) Start(context.Context) error {
	b.active.Store(true)
	b.logger.Info("event bus started")
	return nil
}

func (b *InMemoryEventBus) Stop(context.Context) error {
	b.active.Store(false)
	b.logger.Info("event bus stopped")
	return nil
}

func (b *InMemoryEventBus) handlersFor(eventType string) []shared.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []shared.EventHandler
	for _, s := range b.subs {
		if s.matches(eventType) {
			out = append(out, s.handler)
		}
	}
	return out
}

// deliver isolates a panicking handler from the publisher
func (b *InMemoryEventBus) deliver(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
		}
	}()
	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
