// Package interval computes approximate elapsed-time intervals.
//
// The arithmetic is deliberately simple: a day is exactly 86400 seconds,
// a month is 30 days, a year is 365 days. Reported values can therefore
// be off by a day compared to calendar-accurate counts. That imprecision
// is documented behavior and must not be "fixed" with calendar math.
package interval

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fixed divisors. Not configurable.
const (
	SecondsPerDay = 24 * 60 * 60

	DaysPerWeek   = 7
	DaysPerMonth  = 30
	DaysPerYear   = 365
	DaysPerDecade = 10 * DaysPerYear
)

// ErrFutureEpoch is returned when a milestone date is later than "now".
// A negative day count is never produced.
var ErrFutureEpoch = errors.New("date is in the future")

// Unit is the coarsest unit an interval collapses to when the day count
// is an exact multiple of it.
type Unit int

const (
	UnitDay Unit = iota
	UnitWeek
	UnitMonth
	UnitYear
	UnitDecade
)

// Interval is an approximate elapsed duration, held as a whole number of
// 86400-second days. It is a pure value; all methods are read-only.
type Interval struct {
	days int
}

// FromDays builds an Interval from a non-negative day count.
func FromDays(days int) Interval {
	return Interval{days: days}
}

// Elapsed returns the interval between epoch and now.
//
// total seconds = now - epoch, truncated to whole seconds; days are the
// truncating division of that by 86400. Returns ErrFutureEpoch when the
// epoch is later than now.
func Elapsed(epoch, now time.Time) (Interval, error) {
	seconds := now.Unix() - epoch.Unix()
	if seconds < 0 {
		return Interval{}, ErrFutureEpoch
	}
	return Interval{days: int(seconds / SecondsPerDay)}, nil
}

// Days returns the approximate day count.
func (i Interval) Days() int { return i.days }

// Months returns the approximate month count (days / 30, truncated).
func (i Interval) Months() int { return i.days / DaysPerMonth }

// Years returns the approximate year count (days / 365, truncated).
func (i Interval) Years() int { return i.days / DaysPerYear }

// Unit returns the coarsest unit the day count collapses to, and the
// count in that unit. Only exact multiples collapse: 60 days is 2
// months, but 61 days stays 61 days.
func (i Interval) Unit() (Unit, int) {
	d := i.days
	switch {
	case d == 0:
		return UnitDay, 0
	case d%DaysPerYear == 0:
		years := d / DaysPerYear
		if years%10 == 0 {
			return UnitDecade, years / 10
		}
		return UnitYear, years
	case d%DaysPerMonth == 0:
		return UnitMonth, d / DaysPerMonth
	case d%DaysPerWeek == 0:
		return UnitWeek, d / DaysPerWeek
	}
	return UnitDay, d
}

// Words renders the interval in its collapsed unit, handling
// singular/plural.
func (i Interval) Words() string {
	unit, n := i.Unit()
	switch unit {
	case UnitDecade:
		if n == 1 {
			return "1 decade, that's amazing"
		}
		return fmt.Sprintf("%d decades", n)
	case UnitYear:
		if n == 1 {
			return "1 year, happy anniversary!"
		}
		return fmt.Sprintf("%d years", n)
	case UnitMonth:
		if n == 1 {
			return "1 month"
		}
		return fmt.Sprintf("%d months", n)
	case UnitWeek:
		if n == 1 {
			return "1 week"
		}
		return fmt.Sprintf("%d weeks", n)
	default:
		switch n {
		case 0:
			return "Recently"
		case 1:
			return "1 day"
		}
		return fmt.Sprintf("%d days", n)
	}
}

// DayWords renders the raw day count without collapsing to coarser
// units. Used by the --days flag.
func (i Interval) DayWords() string {
	switch i.days {
	case 0:
		return "Recently"
	case 1:
		return "1 day"
	}
	return fmt.Sprintf("%d days", i.days)
}

// badgeTier maps a day-count threshold to a repeated marker. The table
// is ordered from highest threshold to lowest; lookup takes the first
// row whose threshold the day count reaches, so the tier never
// decreases as days grow.
type badgeTier struct {
	threshold int
	marker    string
	divisor   int
}

var badgeTiers = []badgeTier{
	{threshold: DaysPerDecade, marker: "💎", divisor: DaysPerDecade},
	{threshold: DaysPerYear, marker: "🌟", divisor: DaysPerYear},
	{threshold: DaysPerMonth, marker: "⭐", divisor: DaysPerMonth},
	{threshold: DaysPerWeek, marker: "★", divisor: DaysPerWeek},
	{threshold: 1, marker: "☆", divisor: 1},
}

// Badges returns the decorative marker string for the interval's tier:
// one marker per whole divisor of the tier, e.g. 3 weeks is ★★★ and 5
// decades is 💎💎💎💎💎. Empty for zero days.
func (i Interval) Badges() string {
	for _, t := range badgeTiers {
		if i.days >= t.threshold {
			return strings.Repeat(t.marker, i.days/t.divisor)
		}
	}
	return ""
}

// String renders words followed by badges, e.g. "2 weeks ★★".
func (i Interval) String() string {
	return fmt.Sprintf("%s %s", i.Words(), i.Badges())
}
