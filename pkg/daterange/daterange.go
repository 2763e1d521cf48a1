// Package daterange parses the free-text date-range phrases guests send
// over chat ("20-22 June", "20 June-22 June") into concrete calendar
// ranges. Phrases carry no year, so callers supply the reference year the
// deployment runs under.
package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ReasonMissingSeparator = "missing separator"
	ReasonMonthNotFound    = "month not found"
	ReasonInvalidDate      = "invalid date"
	ReasonNonPositiveRange = "non-positive range"
)

// ParseError reports why a phrase did not resolve to a valid range. Reason
// is one of the Reason constants and is safe to surface to the guest.
type ParseError struct {
	Phrase string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date range %q: %s", e.Phrase, e.Reason)
}

// Range is a half-open date interval: the guest arrives on Start and leaves
// on End, so a stay ending on day X does not conflict with one starting on
// day X.
type Range struct {
	Start time.Time
	End   time.Time
}

// Nights returns the length of the stay in whole days.
func (r Range) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether two ranges intersect under half-open semantics.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

var months = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// Parse turns a phrase like "20-22 June" or "20 June-22 June" into a Range
// within the given reference year. The month name is taken from the end
// segment and applies to both ends; a month token on the start side is
// tolerated and ignored. Day tokens are the first whitespace-delimited token
// of each segment, so trailing noise does not fail the parse.
func Parse(phrase string, year int) (Range, error) {
	parts := strings.Split(phrase, "-")
	if len(parts) != 2 {
		return Range{}, &ParseError{Phrase: phrase, Reason: ReasonMissingSeparator}
	}

	startPart := strings.TrimSpace(parts[0])
	endPart := strings.TrimSpace(parts[1])

	var month time.Month
	found := false
	endTokens := strings.Fields(endPart)
	remaining := make([]string, 0, len(endTokens))
	for _, token := range endTokens {
		if m, ok := months[strings.ToLower(token)]; ok && !found {
			month = m
			found = true
			continue
		}
		remaining = append(remaining, token)
	}
	if !found {
		return Range{}, &ParseError{Phrase: phrase, Reason: ReasonMonthNotFound}
	}

	startDay := firstToken(startPart)
	endDay := firstToken(strings.Join(remaining, " "))

	start, err := buildDate(startDay, month, year)
	if err != nil {
		return Range{}, &ParseError{Phrase: phrase, Reason: ReasonInvalidDate}
	}
	end, err := buildDate(endDay, month, year)
	if err != nil {
		return Range{}, &ParseError{Phrase: phrase, Reason: ReasonInvalidDate}
	}

	if !end.After(start) {
		return Range{}, &ParseError{Phrase: phrase, Reason: ReasonNonPositiveRange}
	}

	return Range{Start: start, End: end}, nil
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// buildDate rejects days that time.Date would silently normalize away,
// such as 31 June rolling over into July.
func buildDate(dayToken string, month time.Month, year int) (time.Time, error) {
	day, err := strconv.Atoi(dayToken)
	if err != nil {
		return time.Time{}, fmt.Errorf("day %q is not a number: %w", dayToken, err)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day %d out of range", day)
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != month {
		return time.Time{}, fmt.Errorf("%d %s does not exist", day, month)
	}
	return date, nil
}
