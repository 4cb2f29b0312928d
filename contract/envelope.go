package contract

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MessageKind is the JSON type of an envelope's "message" field.
type MessageKind string

const (
	KindObject  MessageKind = "object"
	KindArray   MessageKind = "array"
	KindString  MessageKind = "string"
	KindNumber  MessageKind = "number"
	KindBoolean MessageKind = "boolean"
	KindNull    MessageKind = "null"
)

// KindOf returns the MessageKind corresponding to the JSON type of a value.
func KindOf(v ldvalue.Value) MessageKind {
	switch v.Type() {
	case ldvalue.ObjectType:
		return KindObject
	case ldvalue.ArrayType:
		return KindArray
	case ldvalue.StringType:
		return KindString
	case ldvalue.NumberType:
		return KindNumber
	case ldvalue.BoolType:
		return KindBoolean
	default:
		return KindNull
	}
}

// Envelope is the decoded top-level JSON object of a response. It is read-only once decoded.
type Envelope struct {
	Status  string
	Message ldvalue.Value
	Code    ldvalue.OptionalInt
	raw     []byte
}

type envelopeFields struct {
	Status  string              `json:"status"`
	Message ldvalue.Value       `json:"message"`
	Code    ldvalue.OptionalInt `json:"code"`
}

// DecodeEnvelope parses a response body. It returns an error if the body is not valid JSON or
// does not have the fields that every envelope must have.
func DecodeEnvelope(data []byte) (Envelope, error) {
	if !gjson.ValidBytes(data) {
		return Envelope{}, errors.New("body is not valid JSON")
	}
	if err := validateEnvelopeShape(data); err != nil {
		return Envelope{}, fmt.Errorf("body is not a valid response envelope: %w", err)
	}
	var fields envelopeFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Status:  fields.Status,
		Message: fields.Message,
		Code:    fields.Code,
		raw:     append([]byte(nil), data...),
	}, nil
}

// MessageKind returns the JSON type of the "message" field.
func (e Envelope) MessageKind() MessageKind {
	return KindOf(e.Message)
}

// Field looks up a nested value using a dotted path such as "message.australian". The second
// return value is false if there is no such field.
func (e Envelope) Field(path string) (ldvalue.Value, bool) {
	result := gjson.GetBytes(e.raw, path)
	if !result.Exists() {
		return ldvalue.Null(), false
	}
	var v ldvalue.Value
	if err := json.Unmarshal([]byte(result.Raw), &v); err != nil {
		return ldvalue.Null(), false
	}
	return v, true
}

// Raw returns the original response body.
func (e Envelope) Raw() []byte {
	return e.raw
}

func (e Envelope) String() string {
	return string(e.raw)
}
