package model

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"portfolio-builder/internal/domain"
)

//go:embed schema.json
var schemaJSON string

// ValidateDocument checks a document against the embedded portfolio schema.
// Normalized documents always pass; the check exists to catch documents that
// arrive at the store without going through Normalize first.
func ValidateDocument(doc domain.PortfolioDocument) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(b)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	fields := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		fields = append(fields, e.String())
	}
	return &ValidationError{Fields: fields}
}

// ValidationError carries field-level schema violation messages.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("portfolio validation failed: %d field error(s)", len(e.Fields))
}
