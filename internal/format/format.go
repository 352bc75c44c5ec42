package format

import (
	"fmt"
	"strings"
	"time"
)

// Rupees formats a rupee amount with thousand separators.
// Example: Rupees(2999) => "₹2,999"
func Rupees(amount int64) string {
	return "₹" + thousandSep(amount)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// EventDate formats the homepage date as day-with-suffix plus month,
// e.g. "20th September".
func EventDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	day := t.Day()
	return fmt.Sprintf("%d%s %s", day, DaySuffix(day), t.Format("January"))
}

// DaySuffix returns the English ordinal suffix for a day of the month.
func DaySuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
