package validatex

import "github.com/Abraxas-365/formkit/pkg/errx"

var (
	ErrRegistry = errx.NewRegistry("VALIDATION")

	CodeInvalidValue = ErrRegistry.Register("INVALID_VALUE", errx.TypeValidation, "value is not valid")
	CodeWeakPassword = ErrRegistry.Register("WEAK_PASSWORD", errx.TypeValidation, "password does not meet the requirements")
	CodeUnknownKind  = ErrRegistry.Register("UNKNOWN_KIND", errx.TypeNotFound, "unknown value kind")
)

var (
	ErrInvalidValue = CodeInvalidValue.Sentinel()
	ErrWeakPassword = CodeWeakPassword.Sentinel()
	ErrUnknownKind  = CodeUnknownKind.Sentinel()
)
