package hook

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Event describes a completed write on a domain entity. Hooks fire
// after the write is committed, so handlers see durable state.
type Event struct {
	Entity   string
	Action   string
	EntityID string
	Payload  interface{}
}

// Handler reacts to an event. Errors are logged, never propagated: a
// failing handler must not undo or block the write that triggered it.
type Handler func(ctx context.Context, evt Event) error

// Dispatcher fans events out to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]namedHandler
	log      *logrus.Logger
}

type namedHandler struct {
	name string
	fn   Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]namedHandler),
		log:      log,
	}
}

// Register adds a handler for an entity's events. The name identifies
// the handler in failure logs.
func (d *Dispatcher) Register(entity, name string, fn Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[entity] = append(d.handlers[entity], namedHandler{name: name, fn: fn})
}

// Dispatch runs all handlers registered for the event's entity. Each
// handler runs inside its own recover boundary so one panicking or
// failing handler cannot stop the others.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) {
	d.mu.RLock()
	handlers := d.handlers[evt.Entity]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.run(ctx, h, evt)
	}
}

func (d *Dispatcher) run(ctx context.Context, h namedHandler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithFields(logrus.Fields{
				"handler": h.name,
				"entity":  evt.Entity,
				"action":  evt.Action,
				"panic":   fmt.Sprintf("%v", r),
			}).Error("hook handler panicked")
		}
	}()

	if err := h.fn(ctx, evt); err != nil {
		d.log.WithFields(logrus.Fields{
			"handler": h.name,
			"entity":  evt.Entity,
			"action":  evt.Action,
			"id":      evt.EntityID,
		}).WithError(err).Error("hook handler failed")
	}
}
