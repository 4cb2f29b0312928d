package contract

import (
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchemaJSON describes the fields every response envelope must have, whether it is a
// success or an error. A code, when present, is an HTTP status. Whether "status" has the
// expected value is a contract assertion, not a decoding concern, so it is not constrained here.
const envelopeSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["status", "message"],
	"properties": {
		"status": {"type": "string"},
		"message": {"type": ["object", "array", "string"]},
		"code": {"type": "integer", "minimum": 100, "maximum": 599}
	}
}`

var envelopeSchema = mustCompileSchema(envelopeSchemaJSON)

func mustCompileSchema(schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic("invalid built-in JSON schema: " + err.Error())
	}
	return schema
}

func validateEnvelopeShape(data []byte) error {
	result, err := envelopeSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return errors.New(strings.Join(problems, "; "))
}
