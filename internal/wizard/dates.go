// internal/wizard/dates.go
package wizard

import (
	"fmt"
	"strconv"
	"time"
)

// Date groups arrive from the browser as three separate inputs keyed
// "<prefix>-day", "<prefix>-month" and "<prefix>-year". The canonical wire
// format uses hyphens; underscore suffixes from older page revisions are
// still accepted on read.
var dateSuffixes = []struct {
	day, month, year string
}{
	{"-day", "-month", "-year"},
	{"_day", "_month", "_year"},
}

// DateParts holds the display components of a stored ISO date.
type DateParts struct {
	Day   string
	Month string
	Year  string
}

// CombineDateFields resolves the day/month/year components for prefix into an
// ISO YYYY-MM-DD string. The second return is false when any component is
// absent or non-numeric, or when the triple does not form a real calendar
// date (31 February, 29 February in a non-leap year). Malformed input is a
// normal outcome, never an error.
func CombineDateFields(payload map[string]string, prefix string) (string, bool) {
	for _, s := range dateSuffixes {
		dayStr, okDay := payload[prefix+s.day]
		monthStr, okMonth := payload[prefix+s.month]
		yearStr, okYear := payload[prefix+s.year]
		if !okDay && !okMonth && !okYear {
			continue
		}
		if !okDay || !okMonth || !okYear {
			return "", false
		}

		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return "", false
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return "", false
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return "", false
		}

		// time.Date normalises overflow (31 Feb becomes 2/3 March), so the
		// constructed date must round-trip to the exact inputs.
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day || int(date.Month()) != month || date.Year() != year {
			return "", false
		}

		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	return "", false
}

// SplitDateString breaks a stored ISO date back into zero-padded display
// components for pre-filling a page. Empty input yields empty parts.
func SplitDateString(isoDate string) DateParts {
	if isoDate == "" {
		return DateParts{}
	}

	date, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		// Older documents stored full RFC 3339 timestamps.
		date, err = time.Parse(time.RFC3339, isoDate)
		if err != nil {
			return DateParts{}
		}
	}

	return DateParts{
		Day:   fmt.Sprintf("%02d", date.Day()),
		Month: fmt.Sprintf("%02d", int(date.Month())),
		Year:  strconv.Itoa(date.Year()),
	}
}

// HasDateFields reports whether the payload carries any component of the
// group. A POST that includes none of the three keys leaves the stored value
// untouched; that is how "page did not show this field" is told apart from
// "user cleared the field".
func HasDateFields(payload map[string]string, prefix string) bool {
	for _, s := range dateSuffixes {
		if _, ok := payload[prefix+s.day]; ok {
			return true
		}
		if _, ok := payload[prefix+s.month]; ok {
			return true
		}
		if _, ok := payload[prefix+s.year]; ok {
			return true
		}
	}
	return false
}

// StripDateFields removes the raw component keys for prefix from the payload
// so only the reconciled ISO value reaches the document.
func StripDateFields(payload map[string]string, prefix string) {
	for _, s := range dateSuffixes {
		delete(payload, prefix+s.day)
		delete(payload, prefix+s.month)
		delete(payload, prefix+s.year)
	}
}
