package hook

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestDispatcher() *Dispatcher {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewDispatcher(log)
}

func TestDispatchRunsAllHandlers(t *testing.T) {
	d := newTestDispatcher()
	var calls []string

	d.Register("sale", "first", func(ctx context.Context, evt Event) error {
		calls = append(calls, "first")
		return nil
	})
	d.Register("sale", "second", func(ctx context.Context, evt Event) error {
		calls = append(calls, "second")
		return nil
	})

	d.Dispatch(context.Background(), Event{Entity: "sale", Action: "create"})

	if len(calls) != 2 {
		t.Fatalf("expected 2 handler calls, got %d", len(calls))
	}
	if calls[0] != "first" || calls[1] != "second" {
		t.Errorf("handlers ran out of order: %v", calls)
	}
}

func TestDispatchIsolatesFailingHandler(t *testing.T) {
	d := newTestDispatcher()
	var ran bool

	d.Register("transaction", "failing", func(ctx context.Context, evt Event) error {
		return errors.New("boom")
	})
	d.Register("transaction", "after", func(ctx context.Context, evt Event) error {
		ran = true
		return nil
	})

	d.Dispatch(context.Background(), Event{Entity: "transaction", Action: "update"})

	if !ran {
		t.Error("handler after a failing one did not run")
	}
}

func TestDispatchIsolatesPanickingHandler(t *testing.T) {
	d := newTestDispatcher()
	var ran bool

	d.Register("receipt", "panicking", func(ctx context.Context, evt Event) error {
		panic("unexpected")
	})
	d.Register("receipt", "after", func(ctx context.Context, evt Event) error {
		ran = true
		return nil
	})

	d.Dispatch(context.Background(), Event{Entity: "receipt", Action: "create"})

	if !ran {
		t.Error("handler after a panicking one did not run")
	}
}

func TestDispatchIgnoresUnregisteredEntity(t *testing.T) {
	d := newTestDispatcher()
	d.Register("sale", "only", func(ctx context.Context, evt Event) error {
		t.Error("handler for a different entity ran")
		return nil
	})

	d.Dispatch(context.Background(), Event{Entity: "customer", Action: "create"})
}
