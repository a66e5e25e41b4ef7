package validators

import (
	"strings"

	"voyago/internal/utils"
)

// ValidationError is one field-level failure surfaced to the client.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ToMap converts to the field->message shape the response envelope carries.
func (e ValidationErrors) ToMap() map[string]string {
	out := make(map[string]string, len(e))
	for _, err := range e {
		out[err.Field] = err.Message
	}
	return out
}

// ValidateStruct runs the tag-based rules and flattens the result.
func ValidateStruct(s interface{}) ValidationErrors {
	err := utils.ValidateStruct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for field, message := range utils.ValidationErrors(err) {
		errors = append(errors, ValidationError{Field: field, Message: message})
	}
	return errors
}

func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	return strings.ReplaceAll(phone, " ", "")
}
