package worldedit

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/world_layout.schema.json
var layoutSchemaSrc string

var layoutSchema = jsonschema.MustCompileString("world_layout.schema.json", layoutSchemaSrc)

// ValidateLayoutBytes checks a raw layout document against the bundled
// schema. Validation is advisory: loaders log a failure and keep going, since
// Normalize repairs everything the editor actually depends on.
func ValidateLayoutBytes(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if err := layoutSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate layout: %w", err)
	}
	return nil
}
