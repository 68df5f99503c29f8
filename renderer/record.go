package renderer

import (
	"path/filepath"
	"slices"

	"github.com/ChainSafe/path-formatter/finding"
)

// kindError is the tag every record is rendered with, whatever the rule severity.
const kindError = "error"

// Record is a finding normalized for display. Line and Character are one-based.
type Record struct {
	File      string             `json:"file"`
	Line      finding.Coordinate `json:"line"`
	Character finding.Coordinate `json:"character"`
	Position  string             `json:"position"`
	Reason    string             `json:"reason"`
	Code      string             `json:"code"`
	Kind      string             `json:"type"`
}

// newRecord builds the display record of f.
func newRecord(f finding.Finding) *Record {
	start := f.StartPosition()
	line := start.Line.Parse().Add(1)
	character := start.Character.Parse().Add(1)

	return &Record{
		File:      resolve(f.FileName()),
		Line:      line,
		Character: character,
		Position:  line.String() + ":" + character.String(),
		Reason:    f.Reason(),
		Code:      finding.RuleName(f),
		Kind:      kindError,
	}
}

// resolve returns the absolute form of path against the working directory.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// batch holds the records of one formatting call together with the column
// widths measured while building them.
type batch struct {
	records []*Record
	// file is the file of the last finding in input order.
	file           string
	maxReasonLen   int
	maxPositionLen int
}

// collect normalizes findings in input order and sorts the result.
func collect(findings []finding.Finding) *batch {
	b := &batch{records: make([]*Record, 0, len(findings))}
	for _, f := range findings {
		rec := newRecord(f)
		b.file = rec.File
		b.maxReasonLen = max(b.maxReasonLen, textLen(rec.Reason))
		b.maxPositionLen = max(b.maxPositionLen, textLen(rec.Position))
		b.records = append(b.records, rec)
	}
	slices.SortFunc(b.records, compareRecords)
	return b
}

// compareRecords orders records by line, then character. Non-nil records
// sort before nil ones.
func compareRecords(a, b *Record) int {
	switch {
	case a != nil && b == nil:
		return -1
	case a == nil && b != nil:
		return 1
	case a == nil && b == nil:
		return 0
	}
	if c := a.Line.Compare(b.Line); c != 0 {
		return c
	}
	return a.Character.Compare(b.Character)
}

func textLen(s string) int {
	n := 0
	for _, r := range s {
		// runes outside the basic plane take a surrogate pair
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
