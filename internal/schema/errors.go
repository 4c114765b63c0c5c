package schema

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, reported against the record's JSON field name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Messages returns the first message reported for each field.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}

// Field returns the message for field, or "" when the field passed.
func (e *ValidationError) Field(field string) string {
	return e.Messages()[field]
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// fromValidator converts validator errors into a ValidationError.
// Anything else (e.g. validator.InvalidValidationError) is returned as-is.
func fromValidator(err error) error {
	return convert(err, func(fe validator.FieldError) string { return baseField(fe.Field()) })
}

// fromVar converts the result of a single-value check; validate.Var
// reports no field name so the checked field is attached here.
func fromVar(field string, err error) error {
	return convert(err, func(validator.FieldError) string { return field })
}

func convert(err error, fieldName func(validator.FieldError) string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fieldName(fe)
		out.Fields = append(out.Fields, FieldError{Field: field, Message: message(field, fe)})
	}
	return out
}

// baseField strips a dive index, "unavailableSlots[3]" -> "unavailableSlots".
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func message(field string, fe validator.FieldError) string {
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Translate(translator)
}
