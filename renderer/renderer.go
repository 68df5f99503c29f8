package renderer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/path-formatter/finding"
)

// ErrUnknownFormat is returned by New for output formats without a renderer.
var ErrUnknownFormat = errors.New("invalid format")

// Renderer defines the interface for rendering lint results in different formats.
type Renderer interface {
	// Render takes a list of findings and outputs them in the desired format to the provided writer.
	Render(findings []finding.Finding, output io.Writer) error

	// Name returns the name of the renderer.
	Name() string
}

// Formatter is the extension point a linter calls to turn findings into text.
type Formatter interface {
	Name() string
	Format(findings []finding.Finding) string
}

// New returns the renderer for the given output format. Options: text, json.
func New(format string) (Renderer, error) {
	switch format {
	case "text":
		return NewPathFormatter(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
