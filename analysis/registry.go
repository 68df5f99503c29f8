// Package analysis runs Go vet analyzers over packages and reports their
// diagnostics as findings.
package analysis

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
)

// ErrUnknownAnalyzer is returned when a profile names an analyzer that is not registered.
var ErrUnknownAnalyzer = errors.New("unknown analyzer")

// registry holds the analyzers a profile may enable. They only depend on the
// syntax and types of the package under analysis, no facts of dependencies.
var registry = map[string]*analysis.Analyzer{
	assign.Analyzer.Name:       assign.Analyzer,
	bools.Analyzer.Name:        bools.Analyzer,
	defers.Analyzer.Name:       defers.Analyzer,
	nilfunc.Analyzer.Name:      nilfunc.Analyzer,
	unreachable.Analyzer.Name:  unreachable.Analyzer,
	unusedresult.Analyzer.Name: unusedresult.Analyzer,
}

// Names returns the names of the registered analyzers in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup resolves analyzer names. No names selects every registered analyzer.
func lookup(names []string) ([]*analysis.Analyzer, error) {
	if len(names) == 0 {
		names = Names()
	}
	analyzers := make([]*analysis.Analyzer, 0, len(names))
	for _, name := range names {
		a, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAnalyzer, name)
		}
		analyzers = append(analyzers, a)
	}
	return analyzers, nil
}
