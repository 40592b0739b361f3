package utils

import (
	"strings"
	"time"
)

// MonthsBetween counts whole calendar months from one instant to another,
// flooring partial months. The result is negative when `to` precedes `from`.
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())

	// Back off one month when the day within the month has not been
	// reached yet.
	if from.AddDate(0, months, 0).After(to) {
		months--
	}

	return months
}

// IsDateOverdue checks if a date is strictly before the given current date.
func IsDateOverdue(date, now time.Time) bool {
	return date.Before(now)
}

// NormalizeDeviceModel lowercases a raw hardware identifier and rewrites
// component separators so it is safe as a plain query value
// (e.g. "iPhone14,3" -> "iphone14.3").
func NormalizeDeviceModel(raw string) string {
	return strings.ReplaceAll(strings.ToLower(raw), ",", ".")
}

// LanguageCode reduces a locale tag to its bare two-letter language code
// ("en-US" -> "en"). An empty tag falls back to "en".
func LanguageCode(tag string) string {
	if tag == "" {
		return "en"
	}
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return tag[:i]
	}
	return tag
}

// CountryCode extracts the region from a locale tag ("en_US.UTF-8" -> "US").
// Tags without a region fall back to "US".
func CountryCode(tag string) string {
	rest := tag
	if i := strings.IndexAny(rest, "-_"); i >= 0 {
		rest = rest[i+1:]
	} else {
		return "US"
	}
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		rest = rest[:i]
	}
	if len(rest) != 2 {
		return "US"
	}
	return strings.ToUpper(rest)
}
