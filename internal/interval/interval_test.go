package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ===========================================================================
// Tests for Elapsed
// ===========================================================================

func TestElapsed_DayBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		seconds int64
		days    int
	}{
		{name: "zero seconds", seconds: 0, days: 0},
		{name: "one second short of a day", seconds: 86399, days: 0},
		{name: "exactly one day", seconds: 86400, days: 1},
		{name: "one second past a day", seconds: 86401, days: 1},
		{name: "moon landing example", seconds: 19984 * 86400, days: 19984},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			epoch := now.Add(-time.Duration(tt.seconds) * time.Second)
			iv, err := Elapsed(epoch, now)
			require.NoError(t, err)
			require.Equal(t, tt.days, iv.Days())
		})
	}
}

func TestElapsed_FutureEpoch(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	epoch := now.Add(time.Second)

	_, err := Elapsed(epoch, now)
	require.ErrorIs(t, err, ErrFutureEpoch)
}

func TestElapsed_EpochEqualsNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	iv, err := Elapsed(now, now)
	require.NoError(t, err)
	require.Equal(t, 0, iv.Days())
}

func TestElapsed_IgnoresWallClockOffsets(t *testing.T) {
	// Same instant expressed in a non-UTC zone must give the same count.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	berlin := time.FixedZone("CET", 3600)
	epoch := time.Date(1989, 11, 9, 18, 53, 0, 0, berlin)

	ivLocal, err := Elapsed(epoch, now)
	require.NoError(t, err)
	ivUTC, err := Elapsed(epoch.UTC(), now)
	require.NoError(t, err)
	require.Equal(t, ivUTC.Days(), ivLocal.Days())
}

// ===========================================================================
// Tests for Unit collapsing
// ===========================================================================

func TestUnit(t *testing.T) {
	tests := []struct {
		days int
		unit Unit
		n    int
	}{
		{days: 3 * DaysPerDecade, unit: UnitDecade, n: 3},
		{days: DaysPerDecade, unit: UnitDecade, n: 1},
		{days: 33 * DaysPerYear, unit: UnitYear, n: 33},
		{days: 11 * DaysPerYear, unit: UnitYear, n: 11},
		{days: 5 * DaysPerYear, unit: UnitYear, n: 5},
		{days: DaysPerYear, unit: UnitYear, n: 1},
		{days: 5 * DaysPerMonth, unit: UnitMonth, n: 5},
		{days: DaysPerMonth, unit: UnitMonth, n: 1},
		{days: 3 * DaysPerWeek, unit: UnitWeek, n: 3},
		{days: DaysPerWeek, unit: UnitWeek, n: 1},
		{days: 15, unit: UnitDay, n: 15},
		{days: 10, unit: UnitDay, n: 10},
		{days: 5, unit: UnitDay, n: 5},
		{days: 1, unit: UnitDay, n: 1},
		{days: 0, unit: UnitDay, n: 0},
	}

	for _, tt := range tests {
		unit, n := FromDays(tt.days).Unit()
		require.Equal(t, tt.unit, unit, "unit for %d days", tt.days)
		require.Equal(t, tt.n, n, "count for %d days", tt.days)
	}
}

func TestMonthsYears_Truncate(t *testing.T) {
	iv := FromDays(64)
	require.Equal(t, 2, iv.Months(), "64/30 should truncate to 2")
	require.Equal(t, 0, iv.Years())

	iv = FromDays(800)
	require.Equal(t, 26, iv.Months())
	require.Equal(t, 2, iv.Years(), "800/365 should truncate to 2")
}

// ===========================================================================
// Tests for Words / DayWords
// ===========================================================================

func TestWords(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{days: 3 * DaysPerDecade, want: "3 decades"},
		{days: DaysPerDecade, want: "1 decade, that's amazing"},
		{days: 33 * DaysPerYear, want: "33 years"},
		{days: 11 * DaysPerYear, want: "11 years"},
		{days: 5 * DaysPerYear, want: "5 years"},
		{days: DaysPerYear, want: "1 year, happy anniversary!"},
		{days: 5 * DaysPerMonth, want: "5 months"},
		{days: DaysPerMonth, want: "1 month"},
		{days: 3 * DaysPerWeek, want: "3 weeks"},
		{days: DaysPerWeek, want: "1 week"},
		{days: 15, want: "15 days"},
		{days: 10, want: "10 days"},
		{days: 5, want: "5 days"},
		{days: 1, want: "1 day"},
		{days: 0, want: "Recently"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FromDays(tt.days).Words(), "words for %d days", tt.days)
	}
}

func TestDayWords_NeverCollapses(t *testing.T) {
	require.Equal(t, "365 days", FromDays(DaysPerYear).DayWords())
	require.Equal(t, "30 days", FromDays(DaysPerMonth).DayWords())
	require.Equal(t, "7 days", FromDays(DaysPerWeek).DayWords())
	require.Equal(t, "1 day", FromDays(1).DayWords())
	require.Equal(t, "Recently", FromDays(0).DayWords())
}

// ===========================================================================
// Tests for Badges / String
// ===========================================================================

func TestString(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{days: 3 * DaysPerDecade, want: "3 decades 💎💎💎"},
		{days: DaysPerDecade, want: "1 decade, that's amazing 💎"},
		{days: 33 * DaysPerYear, want: "33 years 💎💎💎"},
		{days: 11 * DaysPerYear, want: "11 years 💎"},
		{days: 5 * DaysPerYear, want: "5 years 🌟🌟🌟🌟🌟"},
		{days: DaysPerYear, want: "1 year, happy anniversary! 🌟"},
		{days: 5 * DaysPerMonth, want: "5 months ⭐⭐⭐⭐⭐"},
		{days: DaysPerMonth, want: "1 month ⭐"},
		{days: 3 * DaysPerWeek, want: "3 weeks ★★★"},
		{days: DaysPerWeek, want: "1 week ★"},
		{days: 15, want: "15 days ★★"},
		{days: 10, want: "10 days ★"},
		{days: 5, want: "5 days ☆☆☆☆☆"},
		{days: 1, want: "1 day ☆"},
		{days: 0, want: "Recently "},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FromDays(tt.days).String(), "string for %d days", tt.days)
	}
}

func TestBadges_ReadmeExamples(t *testing.T) {
	// 19984 days since the moon landing: 19984/3650 = 5 diamonds.
	require.Equal(t, "💎💎💎💎💎", FromDays(19984).Badges())

	// 12567 days since the Berlin Wall fell: 12567/3650 = 3 diamonds.
	require.Equal(t, "💎💎💎", FromDays(12567).Badges())
}

func TestBadges_Empty(t *testing.T) {
	require.Equal(t, "", FromDays(0).Badges())
}
