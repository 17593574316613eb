// pkg/registry/schema.go
package registry

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apierrors "activities-api/internal/common/errors"
)

// catalogSchema constrains a catalog document: a non-empty JSON object
// mapping activity name to its record. Capacity must be a positive integer;
// participant emails are opaque non-empty strings (no format validation).
const catalogSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": "object",
		"required": ["description", "schedule", "max_participants", "participants"],
		"additionalProperties": false,
		"properties": {
			"description": {"type": "string", "minLength": 1},
			"schedule": {"type": "string", "minLength": 1},
			"max_participants": {"type": "integer", "minimum": 1},
			"participants": {
				"type": "array",
				"items": {"type": "string", "minLength": 1}
			}
		}
	}
}`

// validateCatalog checks a raw catalog document against the schema.
func validateCatalog(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apierrors.NewCatalogInvalidError(err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apierrors.NewCatalogInvalidError(strings.Join(errs, "; "))
	}

	return nil
}
