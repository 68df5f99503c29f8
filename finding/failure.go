package finding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Failure is a finding in the linter's JSON report layout.
type Failure struct {
	Name         string   `json:"name" yaml:"name"`
	Failure      string   `json:"failure" yaml:"failure"`
	Rule         string   `json:"ruleName,omitempty" yaml:"ruleName,omitempty"`
	RuleSeverity string   `json:"ruleSeverity,omitempty" yaml:"ruleSeverity,omitempty"`
	StartPos     Position `json:"startPosition" yaml:"startPosition"`
	EndPos       Position `json:"endPosition" yaml:"endPosition"`
}

// Position is a zero-based source position with its character offset in the file.
type Position struct {
	LineAndCharacter `yaml:",inline"`
	Position         int `json:"position" yaml:"position"`
}

func (f *Failure) FileName() string { return f.Name }

func (f *Failure) StartPosition() LineAndCharacter { return f.StartPos.LineAndCharacter }

func (f *Failure) Reason() string { return f.Failure }

func (f *Failure) RuleName() string { return f.Rule }

// InputFormat is the encoding of a findings report.
type InputFormat string

const (
	InputFormatJSON InputFormat = "json"
	InputFormatYAML InputFormat = "yaml"
)

// ErrUnknownInputFormat is returned for encodings Decode does not support.
var ErrUnknownInputFormat = errors.New("unknown input format")

// InputFormatFromPath infers the report encoding from the file extension.
// Anything that is not YAML is treated as JSON.
func InputFormatFromPath(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return InputFormatYAML
	default:
		return InputFormatJSON
	}
}

// Decode reads a list of failures from r.
func Decode(r io.Reader, format InputFormat) ([]*Failure, error) {
	var failures []*Failure
	switch format {
	case InputFormatJSON:
		if err := json.NewDecoder(r).Decode(&failures); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse json findings: %w", err)
		}
	case InputFormatYAML:
		if err := yaml.NewDecoder(r).Decode(&failures); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml findings: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInputFormat, format)
	}
	// null list elements carry no finding
	kept := failures[:0]
	for _, f := range failures {
		if f != nil {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// Findings converts failures to the Finding interface.
func Findings(failures []*Failure) []Finding {
	findings := make([]Finding, 0, len(failures))
	for _, f := range failures {
		if f == nil {
			continue
		}
		findings = append(findings, f)
	}
	return findings
}
