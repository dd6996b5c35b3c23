// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package streak computes consecutive-day writing streaks from a user's
// distinct entry dates.
package streak

import (
	"sort"
	"time"
)

// MaxDates caps how many distinct dates a calculation will consider, so
// cost stays bounded for long-lived journals. Callers pass dates
// most-recent-first; anything beyond the cap is ignored.
const MaxDates = 366

// day truncates t to a calendar date in its own location.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Calculate returns the current and longest consecutive-day streaks over
// the given entry dates (most-recent-first, duplicates tolerated).
//
// The current streak is an unbroken chain of daily entries ending at today
// or yesterday; if neither day has an entry the current streak is 0, no
// matter what older runs exist. The longest streak is the longest run of
// calendar-consecutive dates anywhere in the set. An empty set yields 0/0.
func Calculate(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}
	if len(dates) > MaxDates {
		dates = dates[:MaxDates]
	}

	// Deduplicate onto calendar days.
	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = day(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}

	today = day(today)

	// Current streak: anchor at today, or yesterday when today has no
	// entry yet, then walk backward while each expected day is present.
	anchor := today
	if _, ok := seen[anchor]; !ok {
		anchor = today.AddDate(0, 0, -1)
	}
	for expected := anchor; ; expected = expected.AddDate(0, 0, -1) {
		if _, ok := seen[expected]; !ok {
			break
		}
		current++
	}

	// Longest streak: sort ascending, scan pairwise gaps.
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest = 1
	run := 1
	for i := 1; i < len(days); i++ {
		// AddDate rather than a 24h duration so DST transitions do not
		// break a run.
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}

	return current, longest
}

// Longest returns only the longest streak; used where the current streak is
// irrelevant (e.g. achievement progress).
func Longest(dates []time.Time) int {
	_, longest := Calculate(dates, time.Now())
	return longest
}
