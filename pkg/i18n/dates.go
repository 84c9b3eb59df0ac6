package i18n

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// periodSeparator joins the two ends of an experience period (en dash).
const periodSeparator = " – "

func mondayLocale(locale Locale) monday.Locale {
	if locale == LocaleES {
		return monday.LocaleEsES
	}

	return monday.LocaleEnUS
}

// FormatMonthYear renders an ISO-8601 date as abbreviated month plus numeric
// year in the given locale, e.g. "2020-01-01" with "en" yields "Jan 2020".
// Unparsable input is returned trimmed rather than failing: the view-model
// builder must never error out on a well-formed profile.
func FormatMonthYear(isoDate string, locale Locale) string {
	parsed, err := parseISODate(isoDate)
	if err != nil {
		return strings.TrimSpace(isoDate)
	}

	return monday.Format(parsed, "Jan 2006", mondayLocale(locale))
}

// FormatPeriod renders "start – end" where a missing end date becomes the
// locale's "current" label.
func FormatPeriod(startDate string, endDate *string, locale Locale, currentLabel string) string {
	start := FormatMonthYear(startDate, locale)

	end := currentLabel
	if endDate != nil && strings.TrimSpace(*endDate) != "" {
		end = FormatMonthYear(*endDate, locale)
	}

	return start + periodSeparator + end
}

func parseISODate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	return time.Parse("2006-01-02", value)
}
