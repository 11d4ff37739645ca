package scenario

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Parse decodes a single YAML scenario, rejecting unknown fields, and
// validates it.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse scenario: empty document")
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Builtin returns an embedded scenario by name.
func Builtin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(List(), ", "))
	}

	return Parse(data)
}

// List returns the names of all embedded scenarios, sorted.
func List() []string {
	entries, _ := builtinFS.ReadDir("builtin")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}

// Validate checks the kind, its body and the optional strategy and heuristic
// names. It does not build the problem.
func (s *Scenario) Validate() error {
	var body bool
	switch s.Kind {
	case KindGrid:
		body = s.Grid != nil
	case KindRoadmap:
		body = s.Roadmap != nil
	case KindTetromino:
		body = s.Tetromino != nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	if !body {
		return fmt.Errorf("%w: %s", ErrMissingBody, s.Kind)
	}
	if _, err := s.DefaultStrategy(); err != nil {
		return err
	}
	switch strings.ToLower(s.Heuristic) {
	case "", HeuristicDefault, HeuristicManhattan, HeuristicAdmissible, HeuristicZero:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHeuristic, s.Heuristic)
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d", search.ErrOptionViolation, s.MaxExpansions)
	}

	return nil
}

// DefaultStrategy returns the scenario's strategy, or A* when unset.
func (s *Scenario) DefaultStrategy() (search.Strategy, error) {
	if s.Strategy == "" {
		return search.StrategyAStar, nil
	}

	return search.ParseStrategy(s.Strategy)
}
