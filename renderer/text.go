// Package renderer provides a way to render findings in different formats.
package renderer

import (
	"io"
	"strings"

	"github.com/ChainSafe/path-formatter/finding"
	"github.com/ChainSafe/path-formatter/stylize"
)

const (
	formatterName   = "tslint-path-formatter"
	undefinedReason = "<undefined reason>"
	columnGap       = 2
)

// PathFormatter renders findings as column-aligned, colorized text under a
// file path header.
//
// The header shows the file of the last finding in input order. Findings from
// several files are not grouped: they are listed together under that single
// header.
type PathFormatter struct{}

// NewPathFormatter creates a new instance of PathFormatter.
func NewPathFormatter() *PathFormatter {
	return &PathFormatter{}
}

// Name returns the formatter identifier.
func (f *PathFormatter) Name() string {
	return formatterName
}

// Format sorts findings by position and returns the rendered text block.
func (f *PathFormatter) Format(findings []finding.Finding) string {
	b := collect(findings)

	lines := make([]string, 0, len(b.records)+2)
	lines = append(lines, stylize.Underlined(b.file))
	for _, rec := range b.records {
		lines = append(lines, b.line(rec))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n") + "\n"
}

func (b *batch) line(rec *Record) string {
	reason := rec.Reason
	if reason == "" {
		reason = undefinedReason
	}

	var line strings.Builder
	line.WriteString("  ")
	line.WriteString(rec.Position)
	line.WriteString(padding(b.maxPositionLen - textLen(rec.Position) + columnGap))
	line.WriteString(stylize.Fail(rec.Kind))
	line.WriteString("  ")
	line.WriteString(stylize.Warn(reason))
	// measured against the stored reason, not the placeholder
	line.WriteString(padding(b.maxReasonLen - textLen(rec.Reason) + columnGap))
	line.WriteString(rec.Code)
	return line.String()
}

func padding(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Render writes the formatted findings to output.
func (f *PathFormatter) Render(findings []finding.Finding, output io.Writer) error {
	_, err := io.WriteString(output, f.Format(findings))
	return err
}
