package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/Abraxas-365/formkit/pkg/validatex"
)

type ValidateCommand struct {
	*Container
}

func (c *ValidateCommand) Synopsis() string {
	return "Check a value with a strict validator"
}

func (c *ValidateCommand) Help() string {
	return `Usage: formkit validate <kind> <value>

  Checks value and prints "valid" or "invalid" with the reasons.
  Exits 0 when valid, 1 when invalid and 2 on usage errors.

  Kinds: ` + kindList() + `

  Password length and accepted URL schemes come from
  FORMKIT_PASSWORD_MIN_LENGTH and FORMKIT_URL_SCHEMES.`
}

func (c *ValidateCommand) Run(args []string) int {
	if len(args) != 2 {
		c.UI.Error(c.Help())
		return errx.ExitUsage
	}

	kind, err := validatex.ParseKind(args[0])
	if err != nil {
		c.UI.Error(errorMessage(err))
		return errx.ExitCode(err)
	}
	value := args[1]

	if err := c.Checker.Check(kind, value); err != nil {
		c.UI.Output(fmt.Sprintf("invalid %s", kind))
		if kind == validatex.KindPassword {
			for _, msg := range validatex.CheckPassword(value, c.Checker.PasswordMinLength).Messages() {
				c.UI.Output("  - " + msg)
			}
		}
		c.Log.WithField("kind", string(kind)).WithError(err).Debug("value rejected")
		return errx.ExitCode(err)
	}

	c.UI.Output(fmt.Sprintf("valid %s", kind))
	return errx.ExitOK
}

func kindList() string {
	names := make([]string, len(validatex.Kinds))
	for i, k := range validatex.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// errorMessage prefers the errx message over the coded Error() string.
func errorMessage(err error) string {
	var e *errx.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
