package week

import (
	"testing"
	"time"
)

func TestIdentifier(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2025-W01"},
		{time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), "2025-W01"},
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2022-W52"},
		{time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), "2025-W07"},
	}
	for _, c := range cases {
		if got := Identifier(c.date); got != c.want {
			t.Fatalf("Identifier(%v) = %q, want %q", c.date, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	year, wk, err := Parse("2025-W07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != 2025 || wk != 7 {
		t.Fatalf("expected 2025/7, got %d/%d", year, wk)
	}

	for _, bad := range []string{"2025W07", "2025-W", "abcd-W01", "2025-W54", ""} {
		if _, _, err := Parse(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPrevious(t *testing.T) {
	prev, err := Previous("2025-W01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != "2024-W52" {
		t.Fatalf("expected 2024-W52, got %s", prev)
	}

	prev, err = Previous("2025-W10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != "2025-W09" {
		t.Fatalf("expected 2025-W09, got %s", prev)
	}
}

func TestMajorityOfMonth(t *testing.T) {
	got := MajorityOfMonth(2025, time.March)
	want := []string{"2025-W10", "2025-W11", "2025-W12", "2025-W13"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMajorityWeeksDisjointAcrossMonths(t *testing.T) {
	for month := time.January; month < time.December; month++ {
		current := MajorityOfMonth(2025, month)
		next := MajorityOfMonth(2025, month+1)
		seen := map[string]bool{}
		for _, id := range current {
			seen[id] = true
		}
		for _, id := range next {
			if seen[id] {
				t.Fatalf("week %s attributed to both %v and %v", id, month, month+1)
			}
		}
	}
}

func TestBoundaryWeekClaimedByMajorityMonth(t *testing.T) {
	// 2025-W01 spans Dec 30 2024 - Jan 5 2025: two December days, five January days.
	for _, id := range MajorityOfMonth(2024, time.December) {
		if id == "2025-W01" {
			t.Fatal("2025-W01 must not be attributed to December 2024")
		}
	}
	found := false
	for _, id := range MajorityOfMonth(2025, time.January) {
		if id == "2025-W01" {
			found = true
		}
	}
	if !found {
		t.Fatal("2025-W01 must be attributed to January 2025")
	}
}

func TestOverlappingMonthIncludesMinorityWeeks(t *testing.T) {
	got := OverlappingMonth(2025, time.March)
	if len(got) != 6 {
		t.Fatalf("expected 6 overlapping weeks for March 2025, got %v", got)
	}
	if got[0] != "2025-W09" || got[5] != "2025-W14" {
		t.Fatalf("unexpected overlap set: %v", got)
	}
}

func TestMonthOfWeekHeuristic(t *testing.T) {
	cases := []struct {
		id   string
		want int
	}{
		{"2025-W01", 1},
		{"2025-W04", 1},
		{"2025-W05", 2},
		{"2025-W07", 2},
		{"2025-W53", 14},
	}
	for _, c := range cases {
		got, err := MonthOfWeek(c.id)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", c.id, err)
		}
		if got != c.want {
			t.Fatalf("MonthOfWeek(%s) = %d, want %d", c.id, got, c.want)
		}
	}
}

func TestHalfOfMonth(t *testing.T) {
	if HalfOfMonth(time.June) != HalfFirst {
		t.Fatal("June belongs to the first half")
	}
	if HalfOfMonth(time.July) != HalfSecond {
		t.Fatal("July belongs to the second half")
	}
}
