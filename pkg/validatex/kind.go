package validatex

import (
	"fmt"
	"strings"
)

// Kind names a strict validator.
type Kind string

const (
	KindCPF      Kind = "cpf"
	KindCNPJ     Kind = "cnpj"
	KindEmail    Kind = "email"
	KindURL      Kind = "url"
	KindPhone    Kind = "phone"
	KindPassword Kind = "password"
)

// Kinds lists every Kind a Checker understands.
var Kinds = []Kind{KindCPF, KindCNPJ, KindEmail, KindURL, KindPhone, KindPassword}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", ErrRegistry.NewWithMessage(CodeUnknownKind, fmt.Sprintf("unknown kind %q", s)).
		WithDetail("kind", s)
}

// Checker runs strict validators by kind, returning errors instead of
// booleans. The zero value uses the default password length and the
// strict URL schemes.
type Checker struct {
	PasswordMinLength int
	URLSchemes        []string
}

// Check returns nil when value is a valid kind.
func (c Checker) Check(kind Kind, value string) error {
	var ok bool
	switch kind {
	case KindCPF:
		ok = IsCPF(value)
	case KindCNPJ:
		ok = IsCNPJ(value)
	case KindEmail:
		ok = IsEmail(value)
	case KindURL:
		ok = IsURL(value, c.URLSchemes...)
	case KindPhone:
		ok = IsPhone(value)
	case KindPassword:
		return CheckPassword(value, c.PasswordMinLength).Err()
	default:
		return ErrRegistry.NewWithMessage(CodeUnknownKind, fmt.Sprintf("unknown kind %q", kind)).
			WithDetail("kind", string(kind))
	}

	if !ok {
		return ErrRegistry.NewWithMessage(CodeInvalidValue, fmt.Sprintf("invalid %s", kind)).
			WithDetail("kind", string(kind))
	}
	return nil
}
