// Package xdate converts between serial-day values and proleptic Gregorian
// calendar fields.
//
// A serial-day value is a float64 count of days since the epoch
// 1899-12-30T00:00:00 (serial 0.0), the same epoch spreadsheet applications
// use, so serial 45351.5 is 2024-02-29 noon. The integer part selects the
// calendar day, the fraction selects the time of day.
//
// Conversions use Fliegel–Van Flandern Julian-day arithmetic, so they are
// pure integer math on the date part and total over the supported range
// (years 1 through 9999). Out-of-range fields passed to FromCalendar
// normalize arithmetically: month 13 rolls into January of the next year,
// day 32 rolls into the next month, hour 24 into the next day. Time-of-day
// decomposition is carried at millisecond precision; anything finer is out
// of scope.
package xdate

import (
	"math"
	"time"
)

// Day-length constants used by tick arithmetic throughout the scale engine.
const (
	HoursPerDay   = 24.0
	MinutesPerDay = 1440.0
	SecondsPerDay = 86400.0
)

// epochJDN is the Julian day number of the serial epoch, 1899-12-30.
const epochJDN int64 = 2415019

// Calendar holds one broken-down proleptic Gregorian date-time.
// Month and Day are 1-based. Second carries sub-second precision as a
// fraction so formatted labels can show fractional seconds; Year through
// Minute are whole units.
type Calendar struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

// FromCalendar converts calendar fields to a serial-day value.
//
// Fields outside their natural ranges are normalized rather than rejected:
// the month is folded into the year, and overflowing days, hours, minutes,
// and seconds roll forward (or backward, when negative) arithmetically.
// This makes FromCalendar total, which the snapping code relies on when it
// steps a single field past its natural limit.
func FromCalendar(c Calendar) float64 {
	y := c.Year + floorDiv(c.Month-1, 12)
	m := floorMod(c.Month-1, 12) + 1
	jdn := julianDayNumber(y, m, c.Day)
	frac := (float64(c.Hour)*3600 + float64(c.Minute)*60 + c.Second) / SecondsPerDay
	return float64(jdn-epochJDN) + frac
}

// ToCalendar converts a serial-day value to calendar fields.
// The time of day is rounded to the nearest millisecond before it is split
// into hour, minute, and second, so values an ulp below a boundary
// decompose to the boundary instead of 59.999… seconds.
func ToCalendar(serial float64) Calendar {
	dayFloor := math.Floor(serial)
	jdn := int64(dayFloor) + epochJDN
	secs := math.Round((serial-dayFloor)*SecondsPerDay*1000) / 1000
	if secs >= SecondsPerDay {
		jdn++
		secs -= SecondsPerDay
	}
	y, m, d := calendarDate(jdn)
	h := int(secs / 3600)
	secs -= float64(h) * 3600
	mi := int(secs / 60)
	secs -= float64(mi) * 60
	return Calendar{Year: y, Month: m, Day: d, Hour: h, Minute: mi, Second: secs}
}

// FromTime converts a time.Time (any location) to a serial-day value.
func FromTime(t time.Time) float64 {
	t = t.UTC()
	return FromCalendar(Calendar{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	})
}

// Time converts a serial-day value to a UTC time.Time.
func Time(serial float64) time.Time {
	c := ToCalendar(serial)
	sec, frac := math.Modf(c.Second)
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute,
		int(sec), int(math.Round(frac*1e9)), time.UTC)
}

// Format renders a serial-day value using a time layout string
// (e.g. "2006", "Jan-06", "15:04:05.0").
func Format(serial float64, layout string) string {
	return Time(serial).Format(layout)
}

// IsLeapYear reports whether the proleptic Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
// The month normalizes into the year first, so month 13 of 2023 is
// January 2024.
func DaysInMonth(year, month int) int {
	year += floorDiv(month-1, 12)
	month = floorMod(month-1, 12) + 1
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if IsLeapYear(year) {
		return 29
	}
	return 28
}

// julianDayNumber computes the Julian day number for a Gregorian date via
// the Fliegel–Van Flandern formula. Division is truncating, as the formula
// requires. Day values outside the month roll over arithmetically.
func julianDayNumber(year, month, day int) int64 {
	y := int64(year)
	m := int64(month)
	d := int64(day)
	return (1461*(y+4800+(m-14)/12))/4 +
		(367*(m-2-12*((m-14)/12)))/12 -
		(3*((y+4900+(m-14)/12)/100))/4 +
		d - 32075
}

// calendarDate inverts julianDayNumber.
func calendarDate(jdn int64) (year, month, day int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= 1461*i/4 - 31
	j := (80 * l) / 2447
	day = int(l - (2447*j)/80)
	l = j / 11
	month = int(j + 2 - 12*l)
	year = int(100*(n-49) + i + l)
	return year, month, day
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the non-negative remainder matching floorDiv.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
