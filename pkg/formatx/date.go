package formatx

import (
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/araddon/dateparse"
	"golang.org/x/text/language"
)

// Date layouts by locale. The first entry is the fallback.
var (
	dateTags = []language.Tag{
		language.Und,
		language.Portuguese,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.Spanish,
	}
	dateLayouts = []string{
		"2006-01-02",
		"02/01/2006",
		"01/02/2006",
		"02/01/2006",
		"02/01/2006",
	}
	dateMatcher = language.NewMatcher(dateTags)
)

func dateLayout(tag language.Tag) string {
	_, i, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return dateLayouts[0]
	}
	return dateLayouts[i]
}

// Date renders the calendar date of t in the numeric style of tag, e.g.
// 24/12/2024 for pt-BR.
func Date(t time.Time, tag language.Tag) string {
	return t.Format(dateLayout(tag))
}

// ParseDate reads a date written in any common layout. Ambiguous numeric
// dates such as 03/04/2024 are read in the day/month order of tag.
func ParseDate(s string, tag language.Tag) (time.Time, error) {
	monthFirst := dateLayout(tag) == "01/02/2006"
	t, err := dateparse.ParseAny(strings.TrimSpace(s), dateparse.PreferMonthFirst(monthFirst))
	if err != nil {
		return time.Time{}, errx.Wrap(err, fmt.Sprintf("unrecognized date %q", s), errx.TypeValidation).
			WithDetail("value", s)
	}
	return t, nil
}

// DateTime is Date followed by the 24-hour time.
func DateTime(t time.Time, tag language.Tag) string {
	return t.Format(dateLayout(tag) + " 15:04")
}

// RelativeTime describes how long before now t happened: "now",
// "5 minutes ago", "yesterday". Anything 30 days or older, or in the
// future, is rendered as an ISO date.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		return Date(t, language.Und)
	}

	secs := int64(diff / time.Second)
	mins := secs / 60
	hours := mins / 60
	days := hours / 24

	switch {
	case secs == 0:
		return "now"
	case secs < 60:
		return ago(secs, "second")
	case mins < 60:
		return ago(mins, "minute")
	case hours < 24:
		return ago(hours, "hour")
	case days == 1:
		return "yesterday"
	case days < 30:
		return ago(days, "day")
	default:
		return Date(t, language.Und)
	}
}

func ago(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
