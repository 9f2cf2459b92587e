package caltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Recognised textual forms: ISO-8601 with optional zone offset, and the
// three SpaceEngine script shapes (date-time, date only, time only).
var (
	iso8601Regex    = regexp.MustCompile(`^([+\-]?\d+)[:\-](\d\d)[:\-](\d\d)T(\d?\d):(\d\d):(\d\d(?:\.\d*)?)(([+\-]\d?\d):(\d\d))?$`)
	seDateTimeRegex = regexp.MustCompile(`^([+\-]?\d+)[\./-](\d\d)[\./-](\d\d) (\d?\d):(\d\d):(\d\d(?:\.\d*)?)$`)
	seDateRegex     = regexp.MustCompile(`^([+\-]?\d+)[\./-](\d\d)[\./-](\d\d)$`)
	seTimeRegex     = regexp.MustCompile(`^(\d?\d):(\d\d):(\d\d(?:\.\d*)?)$`)
)

// ErrUnrecognisedDateTime is returned when a string matches none of the
// published date/time grammars.
var ErrUnrecognisedDateTime = errors.New("caltime: unrecognised date/time format")

func splitSeconds(field string) (sec, msec int) {
	s, _ := strconv.ParseFloat(field, 64)
	sec = int(s)
	msec = int((s - float64(sec)) * 1000.0)
	return
}

// ParseDateTime parses ISO-8601 or any of the SE script date/time forms
// into a DateTime. A bare SE time yields the time on year 1 January 1; a
// bare SE date yields midnight.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)

	if m := iso8601Regex.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		sec, msec := splitSeconds(m[6])
		offset := 0
		if m[7] != "" {
			oh, _ := strconv.Atoi(m[8])
			om, _ := strconv.Atoi(m[9])
			offset = oh * 3600
			if oh < 0 {
				offset -= om * 60
			} else {
				offset += om * 60
			}
		}
		return DateTime{
			Date:       Date{Year: year, Month: month, Day: day},
			Time:       Time{Hour: hour, Minute: minute, Second: sec, Msec: msec},
			OffsetSecs: offset,
		}, nil
	}

	if m := seDateTimeRegex.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		sec, msec := splitSeconds(m[6])
		return DateTime{
			Date: Date{Year: year, Month: month, Day: day},
			Time: Time{Hour: hour, Minute: minute, Second: sec, Msec: msec},
		}, nil
	}

	if m := seDateRegex.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return DateTime{Date: Date{Year: year, Month: month, Day: day}}, nil
	}

	if m := seTimeRegex.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		sec, msec := splitSeconds(m[3])
		return DateTime{
			Date: Date{Year: 1, Month: 1, Day: 1},
			Time: Time{Hour: hour, Minute: minute, Second: sec, Msec: msec},
		}, nil
	}

	return DateTime{}, errors.Wrap(ErrUnrecognisedDateTime, s)
}

// ParseDate parses a date in ISO-8601 or SE form, discarding any time of
// day.
func ParseDate(s string) (Date, error) {
	dt, err := ParseDateTime(s)
	if err != nil {
		return Date{}, err
	}
	return dt.Date, nil
}

// String renders the date as an ISO-8601 calendar date.
func (d Date) String() string {
	sign := ""
	y := d.Year
	if y < 0 {
		sign = "-"
		y = -y
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, y, d.Month, d.Day)
}

// String renders the time of day, including milliseconds only when
// present.
func (t Time) String() string {
	if t.Msec != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Msec)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// String renders an ISO-8601 date-time with the zone offset when one is
// set.
func (dt DateTime) String() string {
	base := dt.Date.String() + "T" + dt.Time.String()
	if dt.OffsetSecs == 0 {
		return base
	}
	off := dt.OffsetSecs
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return base + fmt.Sprintf("%s%02d:%02d", sign, off/3600, off%3600/60)
}

// ISO8601String renders a Julian day as an ISO-8601 instant, optionally
// with milliseconds.
func ISO8601String(jd float64, addMS bool) string {
	dt := FromJulianDayTime(jd)
	if !addMS {
		dt.Time.Msec = 0
	}
	return dt.String()
}
