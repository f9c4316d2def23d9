// Copyright (c) 2026 Stocktells. All rights reserved.

/*
Package ordinal converts calendar dates to proleptic-Gregorian day numbers.

Day 1 is 0001-01-01. This is the numeric feature the trend-fitting module
regresses price against, and it matches the encoding used by the historical
data the platform was seeded with.

The conversion pivots on the Unix epoch rather than counting from year 1,
because a [time.Duration] cannot span two millennia.
*/
package ordinal

import "time"

// epochOrdinal is the day number of 1970-01-01.
const epochOrdinal = 719163

const secondsPerDay = 86400

// FromTime returns the ordinal day number of t's calendar date (UTC).
func FromTime(t time.Time) int {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return floorDiv(midnight.Unix(), secondsPerDay) + epochOrdinal
}

// ToTime returns the UTC midnight [time.Time] for an ordinal day number.
func ToTime(ordinal int) time.Time {
	return time.Unix(int64(ordinal-epochOrdinal)*secondsPerDay, 0).UTC()
}

// floorDiv divides rounding toward negative infinity, so pre-epoch dates
// map to the correct day number.
func floorDiv(a, b int64) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int(q)
}
