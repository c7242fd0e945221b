package validatex

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Fields maps a form field name to its rules.
type Fields map[string][]validation.Rule

// FormResult is the outcome of ValidateForm.
type FormResult struct {
	Valid  bool
	Errors map[string]string

	errs validation.Errors
}

// Err returns the per-field errors, or nil when the form is valid.
func (r FormResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.errs
}

// ValidateForm runs each field's rules against data[field]. Only the
// first failing rule of a field is reported. Missing keys validate as nil.
func ValidateForm(data map[string]any, fields Fields) FormResult {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	res := FormResult{Errors: map[string]string{}, errs: validation.Errors{}}
	for _, name := range names {
		if err := Combine(fields[name]...).Validate(data[name]); err != nil {
			res.Errors[name] = err.Error()
			res.errs[name] = err
		}
	}
	res.Valid = len(res.Errors) == 0
	return res
}
