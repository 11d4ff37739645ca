// lvsearch solves scenario files with the search strategies of
// github.com/katalvlaran/lvsearch/search.
//
// Usage:
//
//	lvsearch list
//	lvsearch run     (--scenario=<file> | --builtin=<name>) [--strategy=astar] [--max-expansions=N] [--timeout=5s]
//	lvsearch compare (--scenario=<file> | --builtin=<name>) [--markdown]
//	lvsearch replay  (--scenario=<file> | --builtin=<name>) --actions=a,b,c
//
// Global flags: --log-level=debug|info|warn|error, --metrics (print Prometheus
// text exposition after the command), --trace (print OpenTelemetry spans).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
