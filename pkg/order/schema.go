package order

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaText = `{
	"type": "object",
	"required": ["produtos"],
	"properties": {
		"produtos": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["descricao"]
			}
		}
	}
}`

var payloadSchema = jsonschema.MustCompileString("products.json", schemaText)

// ValidatePayload checks that an extraction response is valid JSON
// matching the expected product-list shape. Value-level coercion is
// left to Decode.
func ValidatePayload(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any

	if err := decoder.Decode(&value); err != nil {
		return err
	}

	return payloadSchema.Validate(value)
}
