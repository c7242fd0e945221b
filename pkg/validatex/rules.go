package validatex

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/forPelevin/gomoji"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	numericPattern    = regexp.MustCompile(`^\d+$`)
	datePattern       = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	strongSpecialChar = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// errorCode builds the ozzo error code for a rule name.
func errorCode(rule string) string {
	return "validation_" + rule + "_invalid"
}

func pick(custom []string, fallback string) string {
	if len(custom) > 0 && custom[0] != "" {
		return custom[0]
	}
	return fallback
}

// stringValue unwraps pointers and reports whether value is absent (nil
// or empty) and whether it is textual at all.
func stringValue(value interface{}) (s string, empty, ok bool) {
	value, _ = validation.Indirect(value)
	if value == nil {
		return "", true, true
	}
	isString, str, isBytes, bs := validation.StringOrBytes(value)
	switch {
	case isString:
		s = str
	case isBytes:
		s = string(bs)
	default:
		return "", false, false
	}
	return s, s == "", true
}

// numberValue accepts any Go number or a numeric string.
func numberValue(value interface{}) (n float64, empty, ok bool) {
	value, _ = validation.Indirect(value)
	if value == nil {
		return 0, true, true
	}
	if i, err := validation.ToInt(value); err == nil {
		return float64(i), false, true
	}
	if u, err := validation.ToUint(value); err == nil {
		return float64(u), false, true
	}
	if f, err := validation.ToFloat(value); err == nil {
		return f, false, true
	}
	if s, isStr := value.(string); isStr {
		if strings.TrimSpace(s) == "" {
			return 0, true, true
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, false, err == nil
	}
	return 0, false, false
}

// ─── Rule types ───────────────────────────────────────────────────────────────

// stringRule skips empty input and fails non-text input.
type stringRule struct {
	code    string
	message string
	valid   func(string) bool
}

func (r stringRule) Validate(value interface{}) error {
	s, empty, ok := stringValue(value)
	if empty {
		return nil
	}
	if !ok || !r.valid(s) {
		return validation.NewError(r.code, r.message)
	}
	return nil
}

// numberRule skips nil and fails non-numeric input.
type numberRule struct {
	code    string
	message string
	valid   func(float64) bool
}

func (r numberRule) Validate(value interface{}) error {
	n, empty, ok := numberValue(value)
	if empty {
		return nil
	}
	if !ok || !r.valid(n) {
		return validation.NewError(r.code, r.message)
	}
	return nil
}

type requiredRule struct {
	message string
}

// Validate rejects nil, blank strings and empty slices or maps. Zero
// numbers and false are present values.
func (r requiredRule) Validate(value interface{}) error {
	value, _ = validation.Indirect(value)
	blank := false
	switch v := value.(type) {
	case nil:
		blank = true
	case string:
		blank = strings.TrimSpace(v) == ""
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array:
			blank = rv.Len() == 0
		}
	}
	if blank {
		return validation.NewError(errorCode("required"), r.message)
	}
	return nil
}

type matchRule struct {
	other   interface{}
	message string
}

func (r matchRule) Validate(value interface{}) error {
	if !reflect.DeepEqual(value, r.other) {
		return validation.NewError(errorCode("match"), r.message)
	}
	return nil
}

type combinedRule []validation.Rule

func (rules combinedRule) Validate(value interface{}) error {
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// ─── Constructors ─────────────────────────────────────────────────────────────

// Required fails on nil, blank strings and empty collections.
func Required(message ...string) validation.Rule {
	return requiredRule{message: pick(message, "field is required")}
}

// Email checks the simplified address format.
func Email(message ...string) validation.Rule {
	return stringRule{errorCode("email"), pick(message, "invalid e-mail"), IsEmail}
}

// MinLength requires at least min characters.
func MinLength(min int, message ...string) validation.Rule {
	return stringRule{errorCode("min_length"), pick(message, fmt.Sprintf("minimum of %d characters", min)),
		func(s string) bool { return len([]rune(s)) >= min }}
}

// MaxLength allows at most max characters.
func MaxLength(max int, message ...string) validation.Rule {
	return stringRule{errorCode("max_length"), pick(message, fmt.Sprintf("maximum of %d characters", max)),
		func(s string) bool { return len([]rune(s)) <= max }}
}

// LengthBetween requires between min and max characters, inclusive.
func LengthBetween(min, max int, message ...string) validation.Rule {
	return stringRule{errorCode("length_between"), pick(message, fmt.Sprintf("between %d and %d characters", min, max)),
		func(s string) bool {
			n := len([]rune(s))
			return n >= min && n <= max
		}}
}

// Numeric allows digits only.
func Numeric(message ...string) validation.Rule {
	return stringRule{errorCode("numeric"), pick(message, "only numbers are allowed"), numericPattern.MatchString}
}

// CPF checks the eleven-digit document.
func CPF(message ...string) validation.Rule {
	return stringRule{errorCode("cpf"), pick(message, "invalid CPF"), IsCPF}
}

// CNPJ checks the fourteen-digit document.
func CNPJ(message ...string) validation.Rule {
	return stringRule{errorCode("cnpj"), pick(message, "invalid CNPJ"), IsCNPJ}
}

// Phone accepts 10 or 11 digits.
func Phone(message ...string) validation.Rule {
	return stringRule{errorCode("phone"), pick(message, "invalid phone"), IsPhone}
}

// URL accepts http, https, ftp and ftps URLs.
func URL(message ...string) validation.Rule {
	return stringRule{errorCode("url"), pick(message, "invalid URL"),
		func(s string) bool { return IsURL(s, LooseURLSchemes...) }}
}

// DateFormat checks the DD/MM/YYYY shape. It does not check the calendar.
func DateFormat(message ...string) validation.Rule {
	return stringRule{errorCode("date_format"), pick(message, "invalid date (DD/MM/YYYY)"), datePattern.MatchString}
}

// Between requires min <= value <= max.
func Between(min, max float64, message ...string) validation.Rule {
	return numberRule{errorCode("between"), pick(message, fmt.Sprintf("value must be between %v and %v", min, max)),
		func(n float64) bool { return n >= min && n <= max }}
}

// Min requires value >= min.
func Min(min float64, message ...string) validation.Rule {
	return numberRule{errorCode("min"), pick(message, fmt.Sprintf("minimum value: %v", min)),
		func(n float64) bool { return n >= min }}
}

// Max requires value <= max.
func Max(max float64, message ...string) validation.Rule {
	return numberRule{errorCode("max"), pick(message, fmt.Sprintf("maximum value: %v", max)),
		func(n float64) bool { return n <= max }}
}

// Match requires value to equal other. Empty values are compared too.
func Match(other interface{}, field string, message ...string) validation.Rule {
	return matchRule{other: other, message: pick(message, "must match "+field)}
}

// Pattern requires re to match.
func Pattern(re *regexp.Regexp, message ...string) validation.Rule {
	return stringRule{errorCode("pattern"), pick(message, "invalid format"), re.MatchString}
}

// StrongPassword requires 8 characters with upper and lower case letters,
// a digit and a special character.
func StrongPassword(message ...string) validation.Rule {
	return stringRule{errorCode("strong_password"),
		pick(message, "weak password: minimum 8 characters, 1 uppercase, 1 lowercase, 1 number, 1 special"),
		isStrongPassword}
}

func isStrongPassword(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return len([]rune(s)) >= 8 && upper && lower && digit && strongSpecialChar.MatchString(s)
}

// NoEmoji rejects text containing emoji, e.g. in names and document
// fields.
func NoEmoji(message ...string) validation.Rule {
	return stringRule{errorCode("no_emoji"), pick(message, "emojis are not allowed"),
		func(s string) bool { return !gomoji.ContainsEmoji(s) }}
}

// Combine runs rules in order and returns the first failure.
func Combine(rules ...validation.Rule) validation.Rule {
	return combinedRule(rules)
}
