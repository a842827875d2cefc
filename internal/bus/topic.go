package bus

import (
	"errors"
	"fmt"
	"log/slog"
)

// Handler receives a published notification.
// A non-nil error is reported back to the publisher.
type Handler[T any] func(notification T) error

type subscription[T any] struct {
	id      uint64
	handler Handler[T]
}

// Topic delivers notifications of a single type to its subscribers.
// Delivery is synchronous and follows subscription order.
// Topic is not safe for concurrent use.
type Topic[T any] struct {
	name   string
	logger *slog.Logger
	subs   []subscription[T]
	nextID uint64
}

// NewTopic creates an empty topic. A nil logger discards log output.
func NewTopic[T any](name string, logger *slog.Logger) *Topic[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Topic[T]{
		name:   name,
		logger: logger.With("topic", name),
	}
}

// Name returns the topic name.
func (t *Topic[T]) Name() string {
	return t.name
}

// Subscribe registers handler and returns a function that removes it.
// The returned function may be called more than once.
func (t *Topic[T]) Subscribe(handler Handler[T]) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.subs = append(t.subs, subscription[T]{id: id, handler: handler})
	t.logger.Debug("handler subscribed", "subscription", id, "subscribers", len(t.subs))

	return func() { t.remove(id) }
}

func (t *Topic[T]) remove(id uint64) {
	for i, s := range t.subs {
		if s.id != id {
			continue
		}
		// Copy so a Publish iterating the old slice is unaffected.
		subs := make([]subscription[T], 0, len(t.subs)-1)
		subs = append(subs, t.subs[:i]...)
		subs = append(subs, t.subs[i+1:]...)
		t.subs = subs
		t.logger.Debug("handler unsubscribed", "subscription", id, "subscribers", len(t.subs))
		return
	}
}

// Len returns the number of current subscribers.
func (t *Topic[T]) Len() int {
	return len(t.subs)
}

// Publish calls every handler subscribed when Publish starts, in order,
// and returns once all of them have returned.
// Handler errors do not stop delivery; they are joined and returned.
func (t *Topic[T]) Publish(notification T) error {
	subs := t.subs
	t.logger.Debug("publishing", "subscribers", len(subs))

	var errs []error
	for _, s := range subs {
		if err := s.handler(notification); err != nil {
			errs = append(errs, fmt.Errorf("%s subscriber %d: %w", t.name, s.id, err))
		}
	}
	return errors.Join(errs...)
}
