package caltime

import (
	"math"
	"testing"
)

func TestJulianDayRoundTrip(t *testing.T) {
	cases := []struct {
		date Date
		jd   int64
	}{
		{Date{2000, 1, 1}, 2451545},  // J2000.0 (noon)
		{Date{1987, 1, 27}, 2446823}, // Meeus, example 7.a family
		{Date{1600, 1, 1}, 2305448},
		{Date{1582, 10, 15}, 2299161}, // first Gregorian day
		{Date{1582, 10, 4}, 2299160}, // last Julian day, adjacent
	}
	for _, tc := range cases {
		jd, err := tc.date.ToJulianDay()
		if err != nil {
			t.Fatalf("%v: %v", tc.date, err)
		}
		if jd != tc.jd {
			t.Errorf("%v -> %d, want %d", tc.date, jd, tc.jd)
		}
		back := FromJulianDay(float64(jd))
		if back != tc.date {
			t.Errorf("JD %d -> %v, want %v", jd, back, tc.date)
		}
	}
	if _, err := (Date{0, 1, 1}).ToJulianDay(); err != ErrYearZero {
		t.Errorf("year zero err = %v", err)
	}

	// BC years go in historically (no year zero) and come back
	// astronomically: 4713 BC opens the Julian day count.
	jd, err := (Date{-4713, 1, 1}).ToJulianDay()
	if err != nil || jd != 0 {
		t.Errorf("JD epoch = %d, %v", jd, err)
	}
	if got := FromJulianDay(0); got != (Date{-4712, 1, 1}) {
		t.Errorf("JD 0 = %v", got)
	}
}

func TestLeapYears(t *testing.T) {
	leap := []int{2000, 2024, 1600, 1500, 4}
	notLeap := []int{1900, 2023, 2100}
	for _, y := range leap {
		if !IsLeap(y) {
			t.Errorf("%d should be leap", y)
		}
	}
	for _, y := range notLeap {
		if IsLeap(y) {
			t.Errorf("%d should not be leap", y)
		}
	}
	if DaysInMonth(2, 2024) != 29 || DaysInMonth(2, 2023) != 28 || DaysInMonth(4, 2023) != 30 {
		t.Error("month lengths wrong")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date{2024, 1, 31}
	if got := d.AddDays(1); got != (Date{2024, 2, 1}) {
		t.Errorf("add day = %v", got)
	}
	if got := d.AddMonths(1); got != (Date{2024, 2, 29}) {
		t.Errorf("add month = %v", got)
	}
	if got := (Date{2024, 2, 29}).AddYears(1); got != (Date{2025, 2, 28}) {
		t.Errorf("add year = %v", got)
	}
	// Across the Gregorian gap: Oct 4 1582 + 1 day = Oct 15 1582.
	if got := (Date{1582, 10, 4}).AddDays(1); got != (Date{1582, 10, 15}) {
		t.Errorf("gregorian gap = %v", got)
	}
}

func TestTimeFraction(t *testing.T) {
	noon := Time{Hour: 12}
	if f := TimeToJDFract(noon); f != 0 {
		t.Errorf("noon fraction = %v", f)
	}
	midnight := Time{}
	if f := TimeToJDFract(midnight); f != -0.5 {
		t.Errorf("midnight fraction = %v", f)
	}
	got := JDFractToTime(2451545.0) // J2000.0 is exactly noon
	if got.Hour != 12 || got.Minute != 0 || got.Second != 0 {
		t.Errorf("J2000 time = %v", got)
	}
	dt := FromJulianDayTime(2451544.5)
	if dt.Date != (Date{2000, 1, 1}) || dt.Time.Hour != 0 {
		t.Errorf("midnight J2000 = %v", dt)
	}
}

func TestDateTimeJD(t *testing.T) {
	dt := DateTime{Date: Date{2000, 1, 1}, Time: Time{Hour: 12}}
	jd, err := dt.ToJulianDay()
	if err != nil || jd != 2451545.0 {
		t.Fatalf("jd = %v, %v", jd, err)
	}
	// An hour of positive zone offset moves the UTC instant back.
	dt.OffsetSecs = 3600
	jd, _ = dt.ToJulianDay()
	if math.Abs(jd-(2451545.0-1.0/24)) > 1e-9 {
		t.Errorf("offset jd = %v", jd)
	}
}

func TestAddMsecs(t *testing.T) {
	tm := Time{Hour: 23, Minute: 59, Second: 59, Msec: 500}
	next, days := tm.AddMsecs(600)
	if days != 1 || next.Hour != 0 || next.Msec != 100 {
		t.Errorf("wrap = %v days %d", next, days)
	}
	prev, days := (Time{}).AddMsecs(-1)
	if days != -1 || prev.Hour != 23 || prev.Msec != 999 {
		t.Errorf("wrap back = %v days %d", prev, days)
	}
}

func TestParseISO8601(t *testing.T) {
	dt, err := ParseDateTime("2024-03-01T12:30:45.25+05:30")
	if err != nil {
		t.Fatal(err)
	}
	if dt.Date != (Date{2024, 3, 1}) {
		t.Errorf("date = %v", dt.Date)
	}
	if dt.Time.Hour != 12 || dt.Time.Minute != 30 || dt.Time.Second != 45 || dt.Time.Msec != 250 {
		t.Errorf("time = %v", dt.Time)
	}
	if dt.OffsetSecs != 5*3600+30*60 {
		t.Errorf("offset = %d", dt.OffsetSecs)
	}
	// Negative years and colon separators are part of the grammar.
	if _, err := ParseDateTime("-0044:03:15T9:00:00"); err != nil {
		t.Errorf("ides of March: %v", err)
	}
}

func TestParseSEFormats(t *testing.T) {
	dt, err := ParseDateTime("2024.03.01 6:05:10.5")
	if err != nil {
		t.Fatal(err)
	}
	if dt.Date != (Date{2024, 3, 1}) || dt.Time.Hour != 6 || dt.Time.Msec != 500 {
		t.Errorf("se datetime = %v", dt)
	}
	d, err := ParseDate("1999/12/31")
	if err != nil || d != (Date{1999, 12, 31}) {
		t.Errorf("se date = %v, %v", d, err)
	}
	dt, err = ParseDateTime("23:59:59")
	if err != nil || dt.Time.Hour != 23 || dt.Date.Year != 1 {
		t.Errorf("se time = %v, %v", dt, err)
	}
	if _, err := ParseDateTime("not a date"); err == nil {
		t.Error("garbage accepted")
	}
}

func TestStringRendering(t *testing.T) {
	dt := DateTime{Date: Date{2024, 3, 1}, Time: Time{Hour: 6, Minute: 5, Second: 4}}
	if got := dt.String(); got != "2024-03-01T06:05:04" {
		t.Errorf("render = %q", got)
	}
	dt.OffsetSecs = -(3*3600 + 30*60)
	if got := dt.String(); got != "2024-03-01T06:05:04-03:30" {
		t.Errorf("render with offset = %q", got)
	}
	if got := ISO8601String(2451545.0, false); got != "2000-01-01T12:00:00" {
		t.Errorf("jd render = %q", got)
	}
}

func TestDayOfWeek(t *testing.T) {
	if got := DayOfWeek(2451545.0); got != 6 { // 2000-01-01 was a Saturday
		t.Errorf("J2000 weekday = %d", got)
	}
}

func TestBesselianEpoch(t *testing.T) {
	// B1950.0 is close to JD 2433282.42.
	if got := JDFromBesselianEpoch(1950); math.Abs(got-2433282.42345905) > 1e-6 {
		t.Errorf("B1950 = %v", got)
	}
}
