package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsearch/search"
)

// TracerName is the instrumentation scope used when NewTracing gets nil.
const TracerName = "github.com/katalvlaran/lvsearch/search"

// Tracing records one span per search run.
type Tracing struct {
	tracer trace.Tracer
}

var _ search.Observer = (*Tracing)(nil)

// NewTracing wraps tracer; nil selects the global provider's tracer.
func NewTracing(tracer trace.Tracer) *Tracing {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return &Tracing{tracer: tracer}
}

// SearchStarted opens a "search.<strategy>" span and returns its context.
func (t *Tracing) SearchStarted(ctx context.Context, s search.Strategy) context.Context {
	ctx, _ = t.tracer.Start(ctx, "search."+s.String(),
		trace.WithAttributes(
			attribute.String("search.strategy", s.String()),
			attribute.Bool("search.informed", s.Informed()),
		),
	)

	return ctx
}

// SearchFinished annotates and ends the span opened by SearchStarted.
func (t *Tracing) SearchFinished(ctx context.Context, st search.Stats, err error) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(
		attribute.Int("search.generated", st.Generated),
		attribute.Int("search.expanded", st.Expanded),
		attribute.Float64("search.ramification", st.Ramification),
		attribute.Bool("search.found", st.Found),
		attribute.Float64("search.cost", st.Cost),
		attribute.String("search.outcome", Outcome(st, err)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
