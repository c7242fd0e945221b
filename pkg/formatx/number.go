package formatx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used by callers that have no better tag.
var DefaultLocale = language.BrazilianPortuguese

// Currency renders v with the symbol of the ISO 4217 code iso, e.g.
// "R$ 1.234,56" for BRL in pt-BR.
func Currency(v float64, tag language.Tag, iso string) (string, error) {
	unit, err := currency.ParseISO(iso)
	if err != nil {
		return "", errx.Wrap(err, fmt.Sprintf("unknown currency %q", iso), errx.TypeValidation).
			WithDetail("currency", iso)
	}
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit.Amount(v))), nil
}

// Number renders v with the grouping and decimal separators of tag and up
// to three fraction digits.
func Number(v float64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Percent renders v as a percentage with exactly decimals fraction digits.
// 1.0 is 100%.
func Percent(v float64, decimals int, tag language.Tag) string {
	if decimals < 0 {
		decimals = 0
	}
	return message.NewPrinter(tag).Sprint(number.Percent(v,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

var byteUnits = [...]string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders a size in binary units, dropping trailing zeros:
// 1024 is "1 KB", 1536 is "1.5 KB".
func Bytes(n int64, decimals int) string {
	if n == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := ""
	f := float64(n)
	if f < 0 {
		sign = "-"
		f = -f
	}

	i := int(math.Floor(math.Log(f) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}

	s := strconv.FormatFloat(f/math.Pow(1024, float64(i)), 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return sign + s + " " + byteUnits[i]
}

// Duration renders whole seconds as "1h 1m 1s", omitting zero parts.
// Zero is "0s".
func Duration(seconds int64) string {
	if seconds < 0 {
		// -(seconds+1) cannot overflow, so math.MinInt64 is safe here.
		return "-" + duration(uint64(-(seconds+1))+1)
	}
	return duration(uint64(seconds))
}

func duration(seconds uint64) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
