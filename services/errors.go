package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MissingFieldsError names every required field the caller left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidFieldError reports a field that is present but unusable.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type requiredField struct {
	name    string
	present bool
}

// checkRequired returns a MissingFieldsError listing the absent fields in order, or nil.
func checkRequired(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

func str(name, v string) requiredField {
	return requiredField{name: name, present: strings.TrimSpace(v) != ""}
}

func num(name string, v *float64) requiredField {
	return requiredField{name: name, present: v != nil && *v != 0}
}
