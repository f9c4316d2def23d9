// Copyright (c) 2026 Stocktells. All rights reserved.

package ordinal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akankshakuwar/stocktells/pkg/ordinal"
)

/*
TestOrdinal_KnownValues pins the day numbering against reference dates.
*/
func TestOrdinal_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"year_one", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"unix_epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 719163},
		{"y2k", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 730120},
		{"default_range_start", time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), 735599},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ordinal.FromTime(tt.date))
		})
	}
}

/*
TestOrdinal_RoundTrip verifies ToTime inverts FromTime across a range.
*/
func TestOrdinal_RoundTrip(t *testing.T) {
	start := time.Date(2020, 2, 27, 0, 0, 0, 0, time.UTC)

	// Walk across a leap day and a month boundary.
	for i := 0; i < 40; i++ {
		day := start.AddDate(0, 0, i)
		got := ordinal.ToTime(ordinal.FromTime(day))
		assert.True(t, got.Equal(day), "round trip mismatch for %s: got %s", day, got)
	}
}

/*
TestOrdinal_ConsecutiveDays verifies adjacent dates differ by exactly one.
*/
func TestOrdinal_ConsecutiveDays(t *testing.T) {
	day := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	assert.Equal(t, ordinal.FromTime(day)+1, ordinal.FromTime(next))
}

/*
TestOrdinal_IgnoresClockTime verifies the ordinal depends only on the date.
*/
func TestOrdinal_IgnoresClockTime(t *testing.T) {
	midnight := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2023, 6, 15, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, ordinal.FromTime(midnight), ordinal.FromTime(evening))
}
