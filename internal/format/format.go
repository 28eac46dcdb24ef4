// Package format holds the display helpers shared by the directory and the medical card:
// prices, phone numbers, opening hours, ages and species icons.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount renders a dollar amount with thousands separators, e.g. "$1,250".
func Amount(v float64) string {
	if v == math.Trunc(v) {
		return "$" + printer.Sprintf("%d", int64(v))
	}
	return "$" + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// PriceRange renders a low/high range. A missing or zero low price renders as "".
func PriceRange(low, high *float64) string {
	if low == nil || *low == 0 {
		return ""
	}
	if high == nil || *high == *low {
		return Amount(*low)
	}
	return Amount(*low) + "–" + Amount(*high)
}

var decimalRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Decimal parses a plain decimal amount such as "90", "90.50" or "$90".
// Signs, exponents, hex floats, NaN and Inf are rejected.
func Decimal(s string) (float64, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone formats US numbers for display. Anything that is not 10 digits,
// or 11 digits with a leading 1, is returned unchanged.
func Phone(phone string) string {
	if phone == "" {
		return ""
	}
	d := Digits(phone)
	switch {
	case len(d) == 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	default:
		return phone
	}
}

// PhoneMask applies the as-you-type mask used by phone inputs.
// Input is reduced to at most 10 digits.
func PhoneMask(raw string) string {
	d := Digits(raw)
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// Microchip normalizes a microchip number: digits only, at most 15.
func Microchip(raw string) string {
	d := Digits(raw)
	if len(d) > 15 {
		d = d[:15]
	}
	return d
}

// ValidMicrochipLength reports whether n is an accepted microchip length.
// Empty microchips are allowed.
func ValidMicrochipLength(n int) bool {
	return n == 0 || n == 9 || n == 10 || n == 15
}

var dayPattern = regexp.MustCompile(`(?i)^(Mon|Tue|Wed|Thu|Fri|Sat|Sun|Mon-Fri|Mon-Thu|Mon-Wed|Tue-Fri|Sat-Sun|Weekday|Weekend|Emergency)`)

// HoursLines splits a comma-separated hours string into one line per day group.
// Parts that do not start with a day name are appended to the previous line.
func HoursLines(hours string) []string {
	if strings.TrimSpace(hours) == "" {
		return []string{}
	}
	lines := make([]string, 0)
	for _, part := range strings.Split(hours, ",") {
		part = strings.TrimSpace(part)
		if dayPattern.MatchString(part) || len(lines) == 0 {
			lines = append(lines, part)
			continue
		}
		lines[len(lines)-1] += ", " + part
	}
	return lines
}

// NoteLines splits " / "-separated listing notes.
func NoteLines(notes string) []string {
	if notes == "" {
		return []string{}
	}
	parts := strings.Split(notes, " / ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Age renders the age label for a birthday, counting 365-day years.
func Age(birthday, now time.Time) string {
	years := int(now.Sub(birthday).Hours() / 24 / 365)
	switch years {
	case 0:
		return "< 1 year old"
	case 1:
		return "1 year old"
	default:
		return strconv.Itoa(years) + " years old"
	}
}

// SpeciesEmoji returns the icon shown next to a pet's name.
func SpeciesEmoji(species string) string {
	switch species {
	case "Dog":
		return "🐶"
	case "Cat":
		return "🐱"
	case "Bird":
		return "🐦"
	case "Rabbit":
		return "🐰"
	default:
		return "🐾"
	}
}
