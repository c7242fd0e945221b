package validatex_test

import (
	"regexp"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/formkit/pkg/ptrx"
	"github.com/Abraxas-365/formkit/pkg/validatex"
)

func TestOptionalRulesAcceptEmpty(t *testing.T) {
	rules := map[string]validation.Rule{
		"email":           validatex.Email(),
		"min_length":      validatex.MinLength(3),
		"max_length":      validatex.MaxLength(3),
		"length_between":  validatex.LengthBetween(2, 4),
		"numeric":         validatex.Numeric(),
		"cpf":             validatex.CPF(),
		"cnpj":            validatex.CNPJ(),
		"phone":           validatex.Phone(),
		"url":             validatex.URL(),
		"date_format":     validatex.DateFormat(),
		"between":         validatex.Between(1, 5),
		"min":             validatex.Min(1),
		"max":             validatex.Max(1),
		"pattern":         validatex.Pattern(regexp.MustCompile(`^x$`)),
		"strong_password": validatex.StrongPassword(),
		"no_emoji":        validatex.NoEmoji(),
	}

	var nilString *string
	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, rule.Validate(nil))
			assert.NoError(t, rule.Validate(nilString))
			if name != "between" && name != "min" && name != "max" {
				assert.NoError(t, rule.Validate(""))
			}
		})
	}
}

func TestRules(t *testing.T) {
	cases := []struct {
		name  string
		rule  validation.Rule
		value interface{}
		code  string
	}{
		{"required nil", validatex.Required(), nil, "validation_required_invalid"},
		{"required blank", validatex.Required(), "   ", "validation_required_invalid"},
		{"required empty slice", validatex.Required(), []string{}, "validation_required_invalid"},
		{"required zero", validatex.Required(), 0, ""},
		{"email bad", validatex.Email(), "nope", "validation_email_invalid"},
		{"email ok", validatex.Email(), "a@b.co", ""},
		{"no emoji ok", validatex.NoEmoji(), "Ana Souza", ""},
		{"no emoji", validatex.NoEmoji(), "Ana 🙂", "validation_no_emoji_invalid"},
		{"email via pointer", validatex.Email(), ptrx.To("a@b.co"), ""},
		{"cpf via pointer", validatex.CPF(), ptrx.To("111.111.111-11"), "validation_cpf_invalid"},
		{"required nil pointer", validatex.Required(), (*string)(nil), "validation_required_invalid"},
		{"min length", validatex.MinLength(3), "ab", "validation_min_length_invalid"},
		{"min length runes", validatex.MinLength(3), "ção", ""},
		{"max length", validatex.MaxLength(3), "abcd", "validation_max_length_invalid"},
		{"length between", validatex.LengthBetween(2, 3), "abcd", "validation_length_between_invalid"},
		{"numeric", validatex.Numeric(), "12a", "validation_numeric_invalid"},
		{"numeric ok", validatex.Numeric(), "0123", ""},
		{"cpf", validatex.CPF(), "12345678901", "validation_cpf_invalid"},
		{"cpf ok", validatex.CPF(), "529.982.247-25", ""},
		{"cnpj", validatex.CNPJ(), "11222333000182", "validation_cnpj_invalid"},
		{"phone", validatex.Phone(), "1234", "validation_phone_invalid"},
		{"url ftp ok", validatex.URL(), "ftp://example.com", ""},
		{"url bad scheme", validatex.URL(), "gopher://example.com", "validation_url_invalid"},
		{"date", validatex.DateFormat(), "2024-01-31", "validation_date_format_invalid"},
		{"date ok", validatex.DateFormat(), "31/01/2024", ""},
		{"between", validatex.Between(1, 5), 6, "validation_between_invalid"},
		{"between zero", validatex.Between(1, 5), 0, "validation_between_invalid"},
		{"between string", validatex.Between(1, 5), "3", ""},
		{"min", validatex.Min(10), 9.5, "validation_min_invalid"},
		{"max", validatex.Max(10), uint8(11), "validation_max_invalid"},
		{"max not a number", validatex.Max(10), "ten", "validation_max_invalid"},
		{"match", validatex.Match("secret", "password"), "other", "validation_match_invalid"},
		{"match empty", validatex.Match("secret", "password"), "", "validation_match_invalid"},
		{"match ok", validatex.Match("secret", "password"), "secret", ""},
		{"pattern", validatex.Pattern(regexp.MustCompile(`^[A-Z]{3}$`)), "abc", "validation_pattern_invalid"},
		{"strong password", validatex.StrongPassword(), "Abcdefg1", "validation_strong_password_invalid"},
		{"strong password ok", validatex.StrongPassword(), "Abcdef1.", ""},
		{"wrong type", validatex.Email(), 42, "validation_email_invalid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate(tc.value)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			var verr validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code())
		})
	}
}

func TestRuleMessages(t *testing.T) {
	assert.EqualError(t, validatex.MinLength(8).Validate("abc"), "minimum of 8 characters")
	assert.EqualError(t, validatex.Match(1, "pin").Validate(2), "must match pin")
	assert.EqualError(t, validatex.Email("bad address").Validate("x"), "bad address")
}

func TestCombine(t *testing.T) {
	rule := validatex.Combine(validatex.Required(), validatex.MinLength(3), validatex.Numeric())

	assert.EqualError(t, rule.Validate(""), "field is required")
	assert.EqualError(t, rule.Validate("ab"), "minimum of 3 characters")
	assert.EqualError(t, rule.Validate("abc"), "only numbers are allowed")
	assert.NoError(t, rule.Validate("123"))

	// Works with ozzo's own entry point.
	assert.Error(t, validation.Validate("ab", rule))
}

func TestValidateForm(t *testing.T) {
	fields := validatex.Fields{
		"name":     {validatex.Required(), validatex.MinLength(2)},
		"email":    {validatex.Required(), validatex.Email()},
		"document": {validatex.CPF()},
		"age":      {validatex.Between(18, 130)},
	}

	t.Run("valid", func(t *testing.T) {
		res := validatex.ValidateForm(map[string]any{
			"name":  "Ana",
			"email": "ana@example.com",
			"age":   30,
		}, fields)

		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("first failing rule per field", func(t *testing.T) {
		res := validatex.ValidateForm(map[string]any{
			"name":     "A",
			"document": "11111111111",
			"age":      12,
		}, fields)

		assert.False(t, res.Valid)
		assert.Equal(t, map[string]string{
			"name":     "minimum of 2 characters",
			"email":    "field is required",
			"document": "invalid CPF",
			"age":      "value must be between 18 and 130",
		}, res.Errors)

		var verrs validation.Errors
		require.ErrorAs(t, res.Err(), &verrs)
		assert.Len(t, verrs, 4)
	})
}
