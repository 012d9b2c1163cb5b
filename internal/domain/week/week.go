// Package week provides ISO-8601 week identifiers and the week-to-month
// attribution rules used by the weekly and monthly evaluation batches.
package week

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	HalfFirst  = "first"
	HalfSecond = "second"
)

// Identifier returns the ISO-8601 week identifier ("2025-W07") for t.
// The week belongs to the year containing its Thursday.
func Identifier(t time.Time) string {
	year, wk := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, wk)
}

// Parse splits a "YYYY-Www" identifier into its ISO year and week number.
func Parse(id string) (year, wk int, err error) {
	parts := strings.SplitN(id, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid week identifier %q", id)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week identifier %q", id)
	}
	wk, err = strconv.Atoi(parts[1])
	if err != nil || wk < 1 || wk > 53 {
		return 0, 0, fmt.Errorf("invalid week identifier %q", id)
	}
	return year, wk, nil
}

// Valid reports whether id is a well-formed "YYYY-Www" identifier.
func Valid(id string) bool {
	_, _, err := Parse(id)
	return err == nil
}

// Previous returns the identifier of the week immediately before id.
func Previous(id string) (string, error) {
	year, wk, err := Parse(id)
	if err != nil {
		return "", err
	}
	// Monday of the given ISO week, stepped back seven days.
	monday := mondayOfISOWeek(year, wk)
	return Identifier(monday.AddDate(0, 0, -7)), nil
}

// Monday returns the first day (UTC midnight) of the given ISO week.
func Monday(id string) (time.Time, error) {
	year, wk, err := Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return mondayOfISOWeek(year, wk), nil
}

// OverlappingMonth returns every ISO week identifier containing at least one
// day of the given month, in calendar order.
func OverlappingMonth(year int, month time.Month) []string {
	return weeksOfMonth(year, month, 1)
}

// MajorityOfMonth returns the ISO week identifiers with at least four days
// inside the given month. Each week is claimed by exactly one month under
// this rule, so monthly point totals never double-count a boundary week.
func MajorityOfMonth(year int, month time.Month) []string {
	return weeksOfMonth(year, month, 4)
}

func weeksOfMonth(year int, month time.Month, minDays int) []string {
	counts := map[string]int{}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		counts[Identifier(d)]++
	}

	var weeks []string
	for id, n := range counts {
		if n >= minDays {
			weeks = append(weeks, id)
		}
	}
	sort.Strings(weeks)
	return weeks
}

// MonthOfWeek approximates the month of an ISO week as ceil(weekNumber / 4).
//
// This is a coarse legacy mapping that drifts from the calendar as the year
// progresses (week 53 maps to "month" 14). Callers that need calendar-accurate
// attribution use MajorityOfMonth; this stays for the one batch path that
// predates it.
func MonthOfWeek(id string) (int, error) {
	_, wk, err := Parse(id)
	if err != nil {
		return 0, err
	}
	return (wk + 3) / 4, nil
}

// HalfOfMonth maps a month number to the calendar half-year it falls in.
func HalfOfMonth(month time.Month) string {
	if month <= time.June {
		return HalfFirst
	}
	return HalfSecond
}

func mondayOfISOWeek(year, wk int) time.Time {
	// Jan 4 is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (wk-1)*7)
}
