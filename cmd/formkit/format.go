package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/Abraxas-365/formkit/pkg/formatx"
	"golang.org/x/text/language"
)

type FormatCommand struct {
	*Container

	flagLocale   string
	flagCurrency string
	flagDecimals int
}

func (c *FormatCommand) Synopsis() string {
	return "Render a value for display"
}

func (c *FormatCommand) Help() string {
	return `Usage: formkit format [options] <kind> <value>

  Renders value for display.

  Kinds:
    cpf, cnpj, phone, cep   document masks; malformed input is echoed
    slug, capitalize, label text helpers
    date                    any common date layout, shown for -locale
    bytes                   a byte count, e.g. 1536 -> 1.5 KB
    duration                whole seconds, e.g. 3661 -> 1h 1m 1s
    number, percent         locale aware numbers
    currency                locale aware money

Options:

  -locale=pt-BR     BCP 47 tag for date, number, percent and currency.
  -currency=BRL     ISO 4217 code for currency.
  -decimals=2       Fraction digits for bytes and percent.`
}

func (c *FormatCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("format", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagLocale, "locale", formatx.DefaultLocale.String(), "")
	f.StringVar(&c.flagCurrency, "currency", "BRL", "")
	f.IntVar(&c.flagDecimals, "decimals", 2, "")
	return f
}

func (c *FormatCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return errx.ExitUsage
	}
	if f.NArg() != 2 {
		c.UI.Error(c.Help())
		return errx.ExitUsage
	}

	out, err := c.render(f.Arg(0), f.Arg(1))
	if err != nil {
		c.UI.Error(errorMessage(err))
		return errx.ExitCode(err)
	}
	c.UI.Output(out)
	return errx.ExitOK
}

func (c *FormatCommand) render(kind, value string) (string, error) {
	switch kind {
	case "cpf":
		return formatx.CPF(value), nil
	case "cnpj":
		return formatx.CNPJ(value), nil
	case "phone":
		return formatx.Phone(value), nil
	case "cep":
		return formatx.CEP(value), nil
	case "slug":
		return formatx.Slugify(value), nil
	case "capitalize":
		return formatx.Capitalize(value), nil
	case "label":
		return formatx.FieldLabel(value), nil
	case "date":
		tag, err := c.locale()
		if err != nil {
			return "", err
		}
		t, err := formatx.ParseDate(value, tag)
		if err != nil {
			return "", err
		}
		return formatx.Date(t, tag), nil
	case "bytes":
		n, err := parseInt(value)
		if err != nil {
			return "", err
		}
		return formatx.Bytes(n, c.flagDecimals), nil
	case "duration":
		n, err := parseInt(value)
		if err != nil {
			return "", err
		}
		return formatx.Duration(n), nil
	case "number", "percent", "currency":
		return c.renderNumeric(kind, value)
	}
	return "", errx.NotFound(fmt.Sprintf("unknown format kind %q", kind)).WithDetail("kind", kind)
}

func (c *FormatCommand) renderNumeric(kind, value string) (string, error) {
	v, err := parseFloat(value)
	if err != nil {
		return "", err
	}
	tag, err := c.locale()
	if err != nil {
		return "", err
	}

	switch kind {
	case "percent":
		return formatx.Percent(v, c.flagDecimals, tag), nil
	case "currency":
		return formatx.Currency(v, tag, c.flagCurrency)
	default:
		return formatx.Number(v, tag), nil
	}
}

func (c *FormatCommand) locale() (language.Tag, error) {
	tag, err := language.Parse(c.flagLocale)
	if err != nil {
		return language.Und, errx.Wrap(err, fmt.Sprintf("unknown locale %q", c.flagLocale), errx.TypeValidation)
	}
	return tag, nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errx.Wrap(err, fmt.Sprintf("%q is not an integer", s), errx.TypeValidation)
	}
	return n, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errx.Wrap(err, fmt.Sprintf("%q is not a number", s), errx.TypeValidation)
	}
	return v, nil
}
