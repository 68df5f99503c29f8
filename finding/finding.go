// Package finding defines the lint findings consumed by the renderers.
package finding

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Finding represents a single issue reported by a linter.
type Finding interface {
	// FileName returns the path of the file the finding belongs to.
	FileName() string

	// StartPosition returns the zero-based start of the finding.
	StartPosition() LineAndCharacter

	// Reason returns the finding message.
	Reason() string
}

// RuleNamer is implemented by findings that know the rule which produced them.
type RuleNamer interface {
	RuleName() string
}

// RuleName returns the rule name of f, or an empty string when f does not carry one.
func RuleName(f Finding) string {
	if rn, ok := f.(RuleNamer); ok {
		return rn.RuleName()
	}
	return ""
}

// LineAndCharacter is a zero-based source position.
type LineAndCharacter struct {
	Line      RawCoordinate `json:"line" yaml:"line"`
	Character RawCoordinate `json:"character" yaml:"character"`
}

// RawCoordinate holds a position component as the linter reported it,
// either a number or a numeric string.
type RawCoordinate string

// Int returns a RawCoordinate for n.
func Int(n int) RawCoordinate {
	return RawCoordinate(strconv.Itoa(n))
}

// ErrNotScalar is returned when a coordinate is given as an object or a list.
var ErrNotScalar = errors.New("coordinate must be a number or a string")

// UnmarshalJSON accepts both JSON numbers and JSON strings. Numbers are kept
// in their shortest decimal form, so 1e2 reads as 100.
func (c *RawCoordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = RawCoordinate(s)
	case '{', '[':
		return fmt.Errorf("%w: %s", ErrNotScalar, data)
	case 't', 'f':
		*c = RawCoordinate(data)
	default:
		v, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %s: %w", data, err)
		}
		*c = RawCoordinate(formatNumber(v))
	}
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (c *RawCoordinate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d", ErrNotScalar, node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*c = ""
	case "!!int", "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			// octal, hex and special floats are kept as written
			*c = RawCoordinate(node.Value)
			return nil
		}
		*c = RawCoordinate(formatNumber(v))
	default:
		*c = RawCoordinate(node.Value)
	}
	return nil
}

// formatNumber renders v the way a JavaScript number converts to a string:
// plain decimal from 1e-6 up to 1e21, exponent notation outside.
func formatNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case abs != 0 && (abs >= 1e21 || abs < 1e-6):
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// Go pads the exponent to two digits, JavaScript does not.
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// Parse reads the leading base-10 integer of the coordinate. Leading
// whitespace and a sign are accepted, parsing stops at the first non-digit.
// A coordinate without leading digits is invalid. Large integers round the
// way float64 does.
func (c RawCoordinate) Parse() Coordinate {
	s := strings.TrimLeft(string(c), " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return Coordinate{}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Coordinate{}
	}
	return Coordinate{Value: v, Valid: true}
}

// Coordinate is a parsed position component. An invalid coordinate prints as NaN.
type Coordinate struct {
	Value float64
	Valid bool
}

// Add returns the coordinate shifted by n. Invalid coordinates stay invalid.
func (c Coordinate) Add(n int) Coordinate {
	if !c.Valid {
		return c
	}
	return Coordinate{Value: c.Value + float64(n), Valid: true}
}

// Compare returns -1, 0 or +1. Invalid coordinates are neither less nor
// greater than anything.
func (c Coordinate) Compare(o Coordinate) int {
	if !c.Valid || !o.Valid {
		return 0
	}
	switch {
	case c.Value < o.Value:
		return -1
	case c.Value > o.Value:
		return 1
	}
	return 0
}

func (c Coordinate) String() string {
	if !c.Valid {
		return "NaN"
	}
	return formatNumber(c.Value)
}

// MarshalJSON encodes finite coordinates as numbers, others as null.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid || math.IsInf(c.Value, 0) {
		return []byte("null"), nil
	}
	return []byte(formatNumber(c.Value)), nil
}
