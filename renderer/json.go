package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/path-formatter/finding"
)

// JSONRenderer renders the sorted display records in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(findings []finding.Finding, output io.Writer) error {
	return json.NewEncoder(output).Encode(collect(findings).records)
}

func (r *JSONRenderer) Name() string {
	return "json"
}
