package finding

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawCoordinateParse(t *testing.T) {
	cases := map[string]struct {
		raw   RawCoordinate
		want  float64
		valid bool
	}{
		"number":         {"4", 4, true},
		"zero":           {"0", 0, true},
		"leading spaces": {"  12", 12, true},
		"trailing text":  {"7px", 7, true},
		"fraction":       {"3.9", 3, true},
		"negative":       {"-2", -2, true},
		"plus sign":      {"+5", 5, true},
		"empty":          {"", 0, false},
		"letters":        {"abc", 0, false},
		"sign only":      {"-", 0, false},
		"inner space":    {" - 1", 0, false},
		"large integer":  {"99999999999999999999999", 1e23, true},
		"exponent form":  {"1e+21", 1, true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := tc.raw.Parse()
			assert.Equal(t, tc.valid, c.Valid)
			if tc.valid {
				assert.Equal(t, tc.want, c.Value)
			}
		})
	}
}

func TestCoordinate(t *testing.T) {
	one := Coordinate{Value: 1, Valid: true}
	two := Coordinate{Value: 2, Valid: true}
	nan := Coordinate{}

	assert.Equal(t, "2", one.Add(1).String())
	assert.Equal(t, "1e+23", Coordinate{Value: 1e23, Valid: true}.String())
	assert.Equal(t, "NaN", nan.Add(1).String())

	assert.Equal(t, -1, one.Compare(two))
	assert.Equal(t, 1, two.Compare(one))
	assert.Equal(t, 0, one.Compare(one))
	assert.Equal(t, 0, nan.Compare(one))
	assert.Equal(t, 0, two.Compare(nan))

	data, err := json.Marshal([]Coordinate{one, nan})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, null]`, string(data))
}

func TestRuleName(t *testing.T) {
	f := &Failure{Rule: "semicolon"}
	assert.Equal(t, "semicolon", RuleName(f))
	assert.Equal(t, "", RuleName(noRule{}))
}

type noRule struct{}

func (noRule) FileName() string                { return "a.ts" }
func (noRule) StartPosition() LineAndCharacter { return LineAndCharacter{} }
func (noRule) Reason() string                  { return "" }

const jsonReport = `[
  {
    "endPosition": {"character": 14, "line": 0, "position": 14},
    "failure": "Missing semicolon",
    "name": "src/a.ts",
    "ruleName": "semicolon",
    "ruleSeverity": "ERROR",
    "startPosition": {"character": 13, "line": 0, "position": 13}
  },
  {
    "failure": "Quotemark",
    "name": "src/b.ts",
    "startPosition": {"character": "9", "line": "4"}
  }
]`

const yamlReport = `
- name: src/a.ts
  failure: Missing semicolon
  ruleName: semicolon
  startPosition:
    line: 0
    character: 13
    position: 13
- name: src/b.ts
  failure: Quotemark
  startPosition:
    line: "4"
    character: 9
`

func TestDecode(t *testing.T) {
	for name, tc := range map[string]struct {
		input  string
		format InputFormat
	}{
		"json": {jsonReport, InputFormatJSON},
		"yaml": {yamlReport, InputFormatYAML},
	} {
		t.Run(name, func(t *testing.T) {
			failures, err := Decode(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			require.Len(t, failures, 2)

			first := failures[0]
			assert.Equal(t, "src/a.ts", first.FileName())
			assert.Equal(t, "Missing semicolon", first.Reason())
			assert.Equal(t, "semicolon", first.RuleName())
			assert.Equal(t, RawCoordinate("0"), first.StartPosition().Line)
			assert.Equal(t, RawCoordinate("13"), first.StartPosition().Character)
			assert.Equal(t, 13, first.StartPos.Position)

			second := failures[1]
			assert.Equal(t, "", second.RuleName())
			assert.Equal(t, 4.0, second.StartPosition().Line.Parse().Value)
			assert.Equal(t, 9.0, second.StartPosition().Character.Parse().Value)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	failures, err := Decode(strings.NewReader(""), InputFormatJSON)
	require.NoError(t, err)
	assert.Empty(t, failures)

	failures, err = Decode(strings.NewReader(""), InputFormatYAML)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), InputFormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("[]"), InputFormat("xml"))
	assert.ErrorIs(t, err, ErrUnknownInputFormat)
}

func TestInputFormatFromPath(t *testing.T) {
	assert.Equal(t, InputFormatYAML, InputFormatFromPath("report.yaml"))
	assert.Equal(t, InputFormatYAML, InputFormatFromPath("REPORT.YML"))
	assert.Equal(t, InputFormatJSON, InputFormatFromPath("report.json"))
	assert.Equal(t, InputFormatJSON, InputFormatFromPath("report"))
}

func TestFindings(t *testing.T) {
	failures := []*Failure{{Name: "a"}, {Name: "b"}}
	findings := Findings(failures)
	require.Len(t, findings, 2)
	assert.Equal(t, "b", findings[1].FileName())
}

func TestRawCoordinateUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		input string
		want  RawCoordinate
	}{
		"integer":       {`4`, "4"},
		"exponent":      {`1e2`, "100"},
		"fraction":      {`2.50`, "2.5"},
		"large integer": {`123456789012345678901234`, "1.2345678901234568e+23"},
		"tiny":          {`0.0000001`, "1e-7"},
		"string":        {`"12"`, "12"},
		"null":          {`null`, ""},
		"boolean":       {`true`, "true"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var c RawCoordinate
			require.NoError(t, json.Unmarshal([]byte(tc.input), &c))
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestRawCoordinateRejectsNonScalar(t *testing.T) {
	for _, input := range []string{`{"a":1}`, `[3]`} {
		var c RawCoordinate
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &c), ErrNotScalar, input)
	}

	_, err := Decode(strings.NewReader(`[{"name": "a.ts", "startPosition": {"line": {"a": 1}, "character": 0}}]`), InputFormatJSON)
	assert.ErrorIs(t, err, ErrNotScalar)

	_, err = Decode(strings.NewReader("- name: a.ts\n  startPosition:\n    line: [3]\n    character: 0\n"), InputFormatYAML)
	assert.ErrorIs(t, err, ErrNotScalar)
}

func TestDecodeNumberForms(t *testing.T) {
	failures, err := Decode(strings.NewReader(`[{"name": "a.ts", "startPosition": {"line": 1e2, "character": 0}}]`), InputFormatJSON)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, 100.0, failures[0].StartPosition().Line.Parse().Value)

	failures, err = Decode(strings.NewReader("- name: a.ts\n  startPosition:\n    line: 1e2\n    character: 0x1F\n"), InputFormatYAML)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, RawCoordinate("100"), failures[0].StartPosition().Line)
	assert.Equal(t, RawCoordinate("0x1F"), failures[0].StartPosition().Character)
}

func TestDecodeSkipsNullElements(t *testing.T) {
	for name, tc := range map[string]struct {
		input  string
		format InputFormat
	}{
		"json only null": {`[null]`, InputFormatJSON},
		"json mixed":     {`[null, {"name": "a.ts", "failure": "x"}, null]`, InputFormatJSON},
		"yaml only null": {"- ~\n", InputFormatYAML},
		"yaml mixed":     {"- ~\n- name: a.ts\n  failure: x\n- null\n", InputFormatYAML},
	} {
		t.Run(name, func(t *testing.T) {
			failures, err := Decode(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			for _, f := range failures {
				assert.NotNil(t, f)
			}
			assert.NotPanics(t, func() {
				for _, f := range Findings(failures) {
					f.StartPosition()
				}
			})
		})
	}
}

func TestFindingsSkipsNil(t *testing.T) {
	findings := Findings([]*Failure{nil, {Name: "a"}, nil})
	require.Len(t, findings, 1)
	assert.Equal(t, "a", findings[0].FileName())
}
