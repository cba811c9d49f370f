package layoutfile

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/sash/layout.schema.json"

// schemaNode mirrors the full-record form of a layout node. Compact forms
// (bare sizes, positions and two-element arrays) are accepted by the parser
// but not described here.
type schemaNode struct {
	ID        string       `json:"id,omitempty" jsonschema_description:"Unique node ID, generated when omitted"`
	Size      any          `json:"size,omitempty" jsonschema_description:"Fraction below 1, percentage string such as 40%, or pixels"`
	Position  string       `json:"position,omitempty" jsonschema:"enum=left,enum=right,enum=top,enum=bottom"`
	MinWidth  float64      `json:"minWidth,omitempty" jsonschema:"minimum=0"`
	MinHeight float64      `json:"minHeight,omitempty" jsonschema:"minimum=0"`
	Children  []schemaNode `json:"children,omitempty" jsonschema:"minItems=2,maxItems=2"`
}

type schemaDocument struct {
	Width     float64      `json:"width,omitempty" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Container width in pixels"`
	Height    float64      `json:"height,omitempty" jsonschema:"exclusiveMinimum=0" jsonschema_description:"Container height in pixels"`
	ID        string       `json:"id,omitempty"`
	MinWidth  float64      `json:"minWidth,omitempty" jsonschema:"minimum=0"`
	MinHeight float64      `json:"minHeight,omitempty" jsonschema:"minimum=0"`
	Children  []schemaNode `json:"children,omitempty" jsonschema:"minItems=2,maxItems=2"`
}

// Schema returns the JSON schema of a layout document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := r.Reflect(&schemaDocument{})
	schema.ID = schemaID
	schema.Title = "sash layout document"
	schema.Description = "A binary split tree of panes. Unknown keys are kept as pane payload."
	return schema
}

// SchemaJSON returns the layout schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
