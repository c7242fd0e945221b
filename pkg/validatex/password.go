package validatex

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// DefaultPasswordMinLength applies when CheckPassword gets minLength <= 0.
const DefaultPasswordMinLength = 8

// PasswordSpecials are the characters CheckPassword counts as special.
const PasswordSpecials = "@$!%*?&#"

// PasswordRule names one password requirement.
type PasswordRule string

const (
	PasswordRequired  PasswordRule = "required"
	PasswordLength    PasswordRule = "length"
	PasswordLowercase PasswordRule = "lowercase"
	PasswordUppercase PasswordRule = "uppercase"
	PasswordDigit     PasswordRule = "digit"
	PasswordSpecial   PasswordRule = "special"
)

// Violation is a failed password requirement.
type Violation struct {
	Rule    PasswordRule
	Message string
}

func (v Violation) String() string { return v.Message }

// PasswordReport is the outcome of CheckPassword.
type PasswordReport struct {
	Valid      bool
	Violations []Violation
}

// Messages returns the violation messages in checking order.
func (r PasswordReport) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Message
	}
	return out
}

// Err aggregates the violations, or returns nil when the password is valid.
func (r PasswordReport) Err() error {
	if r.Valid {
		return nil
	}
	var merr *multierror.Error
	for _, v := range r.Violations {
		merr = multierror.Append(merr, errors.New(v.Message))
	}
	return ErrRegistry.NewWithCause(CodeWeakPassword, merr.ErrorOrNil()).
		WithDetail("violations", len(r.Violations))
}

// CheckPassword evaluates every requirement, in a fixed order, and reports
// all of them that fail.
func CheckPassword(s string, minLength int) PasswordReport {
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}

	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		}
	}

	checks := []struct {
		ok   bool
		rule PasswordRule
		msg  string
	}{
		{s != "", PasswordRequired, "password is required"},
		{utf8.RuneCountInString(s) >= minLength, PasswordLength, fmt.Sprintf("password must be at least %d characters", minLength)},
		{lower, PasswordLowercase, "password must contain a lowercase letter"},
		{upper, PasswordUppercase, "password must contain an uppercase letter"},
		{digit, PasswordDigit, "password must contain a number"},
		{special, PasswordSpecial, "password must contain a special character (" + PasswordSpecials + ")"},
	}

	report := PasswordReport{Violations: []Violation{}}
	for _, c := range checks {
		if !c.ok {
			report.Violations = append(report.Violations, Violation{Rule: c.rule, Message: c.msg})
		}
	}
	report.Valid = len(report.Violations) == 0
	return report
}
