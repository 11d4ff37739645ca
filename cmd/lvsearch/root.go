package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvsearch/scenario"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/telemetry"
)

// version is set at build time via -ldflags.
var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel string
	metrics  bool
	trace    bool
	file     string
	builtin  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Solve search problems with DFS, BFS, greedy best-first and A*",
		Long: "lvsearch loads a grid, road-map or tetromino scenario and solves it,\n" +
			"reporting the solution together with generated, expanded and ramification counters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}

	f := root.PersistentFlags()
	f.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.BoolVar(&g.metrics, "metrics", false, "Print Prometheus metrics after the command")
	f.BoolVar(&g.trace, "trace", false, "Print OpenTelemetry spans to stderr")
	f.StringVar(&g.file, "scenario", "", "Path to a scenario YAML file")
	f.StringVar(&g.builtin, "builtin", "", "Name of an embedded scenario (see 'lvsearch list')")

	root.AddCommand(newListCmd())
	root.AddCommand(newRunCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newReplayCmd(g))

	return root
}

// loadScenario resolves --scenario or --builtin.
func (g *globalFlags) loadScenario() (*scenario.Scenario, error) {
	switch {
	case g.file != "" && g.builtin != "":
		return nil, errors.New("use either --scenario or --builtin, not both")
	case g.file != "":
		return scenario.Load(g.file)
	case g.builtin != "":
		return scenario.Builtin(g.builtin)
	}

	return nil, errors.New("a scenario is required: pass --scenario=<file> or --builtin=<name>")
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}

	return lvl, nil
}

// session carries the logger and observers of one command invocation.
type session struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	tracer   *sdktrace.TracerProvider
	observer search.Observer
}

// newSession builds the logger and observers selected by the global flags.
// Logs and spans go to errOut.
func (g *globalFlags) newSession(errOut io.Writer) (*session, error) {
	lvl, err := parseLevel(g.logLevel)
	if err != nil {
		return nil, err
	}
	s := &session{
		logger: slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: lvl})),
	}
	var observers []search.Observer
	if g.metrics {
		s.registry = prometheus.NewRegistry()
		observers = append(observers, telemetry.NewMetrics(s.registry))
	}
	if g.trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("trace exporter: %w", err)
		}
		s.tracer = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		observers = append(observers, telemetry.NewTracing(s.tracer.Tracer(telemetry.TracerName)))
	}
	s.observer = telemetry.Multi(observers...)

	return s, nil
}

// options returns the search options for one run.
func (s *session) options(ctx context.Context) []search.Option {
	return []search.Option{
		search.WithContext(ctx),
		search.WithLogger(s.logger),
		search.WithObserver(s.observer),
	}
}

// close flushes spans and prints the metrics, if enabled.
func (s *session) close(ctx context.Context, out io.Writer) error {
	if s.tracer != nil {
		if err := s.tracer.Shutdown(ctx); err != nil {
			return fmt.Errorf("trace shutdown: %w", err)
		}
	}
	if s.registry == nil {
		return nil
	}
	families, err := s.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
