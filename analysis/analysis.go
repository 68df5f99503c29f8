package analysis

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"github.com/ChainSafe/path-formatter/common"
	"github.com/ChainSafe/path-formatter/finding"
	"github.com/ChainSafe/path-formatter/profile"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedTypesSizes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedModule

// Runner runs the analyzers enabled by a lint profile.
type Runner struct {
	profile   *profile.LintProfile
	analyzers []*analysis.Analyzer
}

// NewRunner initializes a runner for the analyzers named in the profile.
func NewRunner(prof *profile.LintProfile) (*Runner, error) {
	analyzers, err := lookup(prof.Analyzers)
	if err != nil {
		return nil, err
	}
	return &Runner{profile: prof, analyzers: analyzers}, nil
}

// Analyzers returns the names of the analyzers the runner executes.
func (r *Runner) Analyzers() []string {
	names := make([]string, 0, len(r.analyzers))
	for _, a := range r.analyzers {
		names = append(names, a.Name)
	}
	return names
}

// Run loads the packages matching patterns from dir and returns the
// diagnostics of every analyzer as findings. Without patterns the whole
// module enclosing dir is analyzed.
func (r *Runner) Run(ctx context.Context, dir string, patterns ...string) ([]finding.Finding, error) {
	modRoot, err := common.FindModuleRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to find Go module root: %w", err)
	}
	if len(patterns) == 0 {
		dir = modRoot
		patterns = []string{"./..."}
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to determine absolute path: %w", err)
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     dir,
		Tests:   r.profile.Tests,
		Env: append(
			os.Environ(),
			fmt.Sprintf("GOOS=%s", r.profile.GOOS),
			fmt.Sprintf("GOARCH=%s", r.profile.GOARCH),
		),
	}

	initial, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	if packages.PrintErrors(initial) > 0 {
		return nil, fmt.Errorf("packages contain errors")
	}

	failures := make([]*finding.Failure, 0)
	seen := make(map[string]bool)
	for _, pkg := range initial {
		err := r.analyzePackage(pkg, func(a *analysis.Analyzer, d analysis.Diagnostic) {
			f := toFailure(pkg.Fset, a, d)
			// test variants of a package report the same diagnostics again
			key := fmt.Sprintf("%s:%d:%s:%s", f.Name, f.StartPos.Position, f.Rule, f.Failure)
			if seen[key] {
				return
			}
			seen[key] = true
			failures = append(failures, f)
		})
		if err != nil {
			return nil, err
		}
	}
	return finding.Findings(failures), nil
}

// analyzePackage runs every analyzer of the runner, and the analyzers they
// require, on a single package.
func (r *Runner) analyzePackage(pkg *packages.Package, report func(*analysis.Analyzer, analysis.Diagnostic)) error {
	results := make(map[*analysis.Analyzer]any)

	var run func(a *analysis.Analyzer) (any, error)
	run = func(a *analysis.Analyzer) (any, error) {
		if res, ok := results[a]; ok {
			return res, nil
		}
		resultOf := make(map[*analysis.Analyzer]any, len(a.Requires))
		for _, req := range a.Requires {
			res, err := run(req)
			if err != nil {
				return nil, err
			}
			resultOf[req] = res
		}

		pass := &analysis.Pass{
			Analyzer:     a,
			Fset:         pkg.Fset,
			Files:        pkg.Syntax,
			OtherFiles:   pkg.OtherFiles,
			IgnoredFiles: pkg.IgnoredFiles,
			Pkg:          pkg.Types,
			TypesInfo:    pkg.TypesInfo,
			TypesSizes:   pkg.TypesSizes,
			TypeErrors:   pkg.TypeErrors,
			Module:       module(pkg),
			Report:       func(d analysis.Diagnostic) { report(a, d) },
			ResultOf:     resultOf,
			ReadFile:     os.ReadFile,

			// registered analyzers do not use facts
			ImportObjectFact:  func(types.Object, analysis.Fact) bool { return false },
			ImportPackageFact: func(*types.Package, analysis.Fact) bool { return false },
			ExportObjectFact:  func(types.Object, analysis.Fact) {},
			ExportPackageFact: func(analysis.Fact) {},
			AllPackageFacts:   func() []analysis.PackageFact { return nil },
			AllObjectFacts:    func() []analysis.ObjectFact { return nil },
		}

		res, err := a.Run(pass)
		if err != nil {
			return nil, fmt.Errorf("analyzer %s failed on %s: %w", a.Name, pkg.PkgPath, err)
		}
		results[a] = res
		return res, nil
	}

	for _, a := range r.analyzers {
		if _, err := run(a); err != nil {
			return err
		}
	}
	return nil
}

func module(pkg *packages.Package) *analysis.Module {
	if pkg.Module == nil {
		return nil
	}
	return &analysis.Module{
		Path:      pkg.Module.Path,
		Version:   pkg.Module.Version,
		GoVersion: pkg.Module.GoVersion,
	}
}

// toFailure converts a diagnostic to a finding with zero-based coordinates.
func toFailure(fset *token.FileSet, a *analysis.Analyzer, d analysis.Diagnostic) *finding.Failure {
	start := fset.Position(d.Pos)
	end := start
	if d.End.IsValid() {
		end = fset.Position(d.End)
	}
	return &finding.Failure{
		Name:         start.Filename,
		Failure:      d.Message,
		Rule:         a.Name,
		RuleSeverity: "ERROR",
		StartPos:     position(start),
		EndPos:       position(end),
	}
}

func position(p token.Position) finding.Position {
	return finding.Position{
		LineAndCharacter: finding.LineAndCharacter{
			Line:      finding.Int(p.Line - 1),
			Character: finding.Int(p.Column - 1),
		},
		Position: p.Offset,
	}
}
