// Package caltime implements the proleptic Gregorian/Julian calendar and
// Julian-day conversions the script parser and object mapper rely on.
//
// Dates before the Gregorian reform of October 1582 are interpreted in the
// Julian calendar, matching the astronomical convention. ToJulianDay reads
// negative years historically (-1 is 1 BC) and refuses year zero, while
// FromJulianDay returns astronomical years (0 is 1 BC, -1 is 2 BC). A Julian day is a double whose integer part counts
// days from the astronomical epoch and whose fraction places noon at zero.
package caltime

import (
	"time"

	"github.com/pkg/errors"
)

// ErrYearZero is returned by day-number conversions for calendar year 0.
var ErrYearZero = errors.New("caltime: there is no year zero")

// Date is a calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a time of day with millisecond resolution.
type Time struct {
	Hour   int
	Minute int
	Second int
	Msec   int
}

// DateTime pairs a date and a time of day with an offset from UTC in
// seconds.
type DateTime struct {
	Date       Date
	Time       Time
	OffsetSecs int
}

// IsLeap reports whether the year is a leap year: Gregorian rules after
// 1582, plain fourth-year rule before.
func IsLeap(year int) bool {
	if year > 1582 {
		if year%100 == 0 {
			return year%400 == 0
		}
		return year%4 == 0
	}
	return year%4 == 0
}

// DaysInMonth returns the day count of the month in the given year, or 0
// for an invalid month.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValid reports whether the date names an existing calendar day.
func (d Date) IsValid() bool {
	return d.Month > 0 && d.Month <= 12 && d.Day > 0 && d.Day <= DaysInMonth(d.Month, d.Year)
}

// ToJulianDay converts the date to its Julian day number (no day
// fraction). The algorithm is the integer-arithmetic form from Numerical
// Recipes; dates on or after 1582-10-15 get the Gregorian correction.
func (d Date) ToJulianDay() (int64, error) {
	const igreg = 588829 // 15 + 31*(10 + 12*1582)

	jy := int64(d.Year)
	if jy == 0 {
		return 0, ErrYearZero
	}
	if jy < 0 {
		jy++
	}
	var jm int64
	if d.Month > 2 {
		jm = int64(d.Month) + 1
	} else {
		jy--
		jm = int64(d.Month) + 13
	}
	jul := floorDiv(1461*jy, 4) + floorDiv(306001*jm, 10000) + int64(d.Day) + 1720995
	if int64(d.Day)+31*(int64(d.Month)+12*int64(d.Year)) >= igreg {
		ja := jy / 100
		jul += 2 - ja + ja/4
	}
	return jul, nil
}

// floorDiv is integer division rounding toward negative infinity, the
// floor() the day-count formula needs for negative years.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FromJulianDay converts a Julian day to a calendar date, rounding to the
// civil day containing the instant.
func FromJulianDay(jd float64) Date {
	y, m, d := dateFromJD(jd)
	return Date{Year: y, Month: m, Day: d}
}

func dateFromJD(jd float64) (yy, mm, dd int) {
	const (
		jdGregCal            = 2299161
		jbMaxWithoutOverflow = 107374182
	)
	julian := int64(floorF(jd + 0.5))

	var ta, jalpha int64
	switch {
	case julian >= jdGregCal:
		jalpha = (4*(julian-1867216) - 1) / 146097
		ta = julian + 1 + jalpha - jalpha/4
	case julian < 0:
		ta = julian + 36525*(1-julian/36525)
	default:
		ta = julian
	}

	tb := ta + 1524
	var tc int64
	if tb <= jbMaxWithoutOverflow {
		tc = (tb*20 - 2442) / 7305
	} else {
		tc = int64((uint64(tb)*20 - 2442) / 7305)
	}
	td := 365*tc + tc/4
	te := ((tb - td) * 10000) / 306001

	dd = int(tb - td - (306001*te)/10000)
	mm = int(te - 1)
	if mm > 12 {
		mm -= 12
	}
	yy = int(tc - 4715)
	if mm > 2 {
		yy--
	}
	if julian < 0 {
		yy -= int(100 * (1 - julian/36525))
	}
	return
}

func floorF(x float64) float64 {
	i := float64(int64(x))
	if x < 0 && i != x {
		i--
	}
	return i
}

// AddDays returns the date moved by n civil days.
func (d Date) AddDays(n int) Date {
	jd, err := d.ToJulianDay()
	if err != nil {
		return d
	}
	r := FromJulianDay(float64(jd + int64(n)))
	if r.Year <= 0 {
		r.Year-- // back to the historical numbering ToJulianDay reads
	}
	return r
}

// AddMonths returns the date moved by n months, clamping the day to the
// target month's length.
func (d Date) AddMonths(n int) Date {
	y := d.Year
	m := d.Month + n
	for m > 12 {
		m -= 12
		y++
	}
	for m < 1 {
		m += 12
		y--
	}
	day := d.Day
	if dim := DaysInMonth(m, y); day > dim {
		day = dim
	}
	return Date{Year: y, Month: m, Day: day}
}

// AddYears returns the date moved by n years, clamping February 29.
func (d Date) AddYears(n int) Date {
	y := d.Year + n
	day := d.Day
	if dim := DaysInMonth(d.Month, y); day > dim {
		day = dim
	}
	return Date{Year: y, Month: d.Month, Day: day}
}

// MsecOfDay returns the time of day in milliseconds.
func (t Time) MsecOfDay() int {
	return ((t.Hour*60+t.Minute)*60+t.Second)*1000 + t.Msec
}

// IsValid reports whether the time of day is within range.
func (t Time) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60 &&
		t.Msec >= 0 && t.Msec < 1000
}

// AddMsecs returns the time moved by ms milliseconds; wrapped days are
// reported in the second return.
func (t Time) AddMsecs(ms int) (Time, int) {
	const msecPerDay = 86400000
	total := t.MsecOfDay() + ms
	days := total / msecPerDay
	total %= msecPerDay
	if total < 0 {
		total += msecPerDay
		days--
	}
	return Time{
		Hour:   total / 3600000,
		Minute: total / 60000 % 60,
		Second: total / 1000 % 60,
		Msec:   total % 1000,
	}, days
}

// TimeToJDFract converts a time of day to the Julian-day fraction, with
// noon as zero.
func TimeToJDFract(t Time) float64 {
	return float64(t.MsecOfDay())/86400000.0 - 0.5
}

// JDFractToTime extracts the time of day from a Julian day.
func JDFractToTime(jd float64) Time {
	h, m, s, ms, _ := timeFromJD(jd)
	return Time{Hour: h, Minute: m, Second: s, Msec: ms}
}

func timeFromJD(jd float64) (hour, minute, second, msec int, wrapDay bool) {
	frac := jd - floorF(jd)
	// The additive constant absorbs the truncation error of the fraction.
	secs := frac*86400.0 + 0.0001
	s := int(floorF(secs))

	hour = s/3600 + 12
	if hour >= 24 {
		hour -= 24
		wrapDay = true
	}
	minute = s / 60 % 60
	second = s % 60
	msec = int(floorF((secs - floorF(secs)) * 1000.0))
	return
}

// ToJulianDay converts the date-time (interpreted in UTC after removing
// its offset) to a fractional Julian day.
func (dt DateTime) ToJulianDay() (float64, error) {
	day, err := dt.Date.ToJulianDay()
	if err != nil {
		return 0, err
	}
	return float64(day) + TimeToJDFract(dt.Time) - float64(dt.OffsetSecs)/86400.0, nil
}

// FromJulianDayTime converts a fractional Julian day to a UTC date-time.
func FromJulianDayTime(jd float64) DateTime {
	hour, minute, second, msec, wrap := timeFromJD(jd)
	dayJD := jd
	if wrap {
		dayJD += 0.1
	}
	y, m, d := dateFromJD(dayJD)
	return DateTime{
		Date: Date{Year: y, Month: m, Day: d},
		Time: Time{Hour: hour, Minute: minute, Second: second, Msec: msec},
	}
}

// Now returns the current UTC date-time.
func Now() DateTime {
	t := time.Now().UTC()
	return DateTime{
		Date: Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()},
		Time: Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Msec: t.Nanosecond() / 1e6},
	}
}

// JDFromSystem returns the current UTC instant as a Julian day.
func JDFromSystem() float64 {
	jd, _ := Now().ToJulianDay()
	return jd
}

// JDFromBesselianEpoch converts a Besselian epoch (e.g. 1950.0) to a
// Julian day.
func JDFromBesselianEpoch(epoch float64) float64 {
	return 2400000.5 + 15019.81352 + (epoch-1900.0)*365.242198781
}

// DayOfWeek returns the weekday of a Julian day, 0 = Sunday.
func DayOfWeek(jd float64) int {
	d := jd + 1.5
	w := d - 7*floorF(d/7)
	return int(floorF(w))
}
