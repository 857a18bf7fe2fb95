package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator is implemented by every response envelope. Validate reports the first mandatory
// field that is missing or malformed after decoding.
type Validator interface {
	Validate() error
}

// ValidationError is returned when a payload does not match the expected schema.
type ValidationError struct {
	Schema string
	Field  string
	Reason string
	Err    error
}

func (v *ValidationError) Error() string {
	message := fmt.Sprintf("invalid %s", v.Schema)
	if v.Field != "" {
		message = fmt.Sprintf("%s: %s", message, v.Field)
	}
	if v.Reason != "" {
		message = fmt.Sprintf("%s %s", message, v.Reason)
	}
	if v.Err != nil {
		message = fmt.Sprintf("%s: %s", message, v.Err.Error())
	}
	return message
}

func (v *ValidationError) Unwrap() error {
	return v.Err
}

// Decode strictly decodes body into target and validates the result.
func Decode(body []byte, target Validator) error {
	if err := json.Unmarshal(body, target); err != nil {
		return &ValidationError{Schema: schemaName(target), Reason: "is malformed", Err: err}
	}
	return target.Validate()
}

func missing(schema string, field string) error {
	return &ValidationError{Schema: schema, Field: field, Reason: "is required"}
}

func schemaName(target interface{}) string {
	name := fmt.Sprintf("%T", target)
	name = strings.TrimPrefix(name, "*")
	return strings.TrimPrefix(name, "models.")
}
