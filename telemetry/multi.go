package telemetry

import (
	"context"

	"github.com/katalvlaran/lvsearch/search"
)

type multi struct {
	observers []search.Observer
}

// startedKey maps a multi to the contexts its observers returned.
type startedKey struct{ m *multi }

// Multi notifies every non-nil observer in order. Each SearchStarted receives
// the context returned by the previous one, and each SearchFinished gets back
// the context its own SearchStarted returned. SearchFinished runs in reverse
// order so spans close inside out.
func Multi(observers ...search.Observer) search.Observer {
	m := &multi{observers: make([]search.Observer, 0, len(observers))}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}

	return m
}

func (m *multi) SearchStarted(ctx context.Context, s search.Strategy) context.Context {
	started := make([]context.Context, len(m.observers))
	for i, o := range m.observers {
		ctx = o.SearchStarted(ctx, s)
		started[i] = ctx
	}

	return context.WithValue(ctx, startedKey{m}, started)
}

func (m *multi) SearchFinished(ctx context.Context, st search.Stats, err error) {
	started, _ := ctx.Value(startedKey{m}).([]context.Context)
	for i := len(m.observers) - 1; i >= 0; i-- {
		octx := ctx
		if i < len(started) {
			octx = started[i]
		}
		m.observers[i].SearchFinished(octx, st, err)
	}
}
