package clock

import (
	"strconv"
	"strings"
	"time"
)

// Unit is the calendar unit of a Period.
type Unit uint8

const (
	Days Unit = iota
	Weeks
	Months
	Years
)

// daysPerUnit is a fixed calendar approximation: months are 30 days and
// years are 365, regardless of the actual calendar.
var daysPerUnit = map[Unit]uint32{
	Days:   1,
	Weeks:  7,
	Months: 30,
	Years:  365,
}

var unitNames = map[Unit]string{
	Days:   "days",
	Weeks:  "weeks",
	Months: "months",
	Years:  "years",
}

// Period is a relative time window such as "2 weeks", used for rolling
// listing filters.
type Period struct {
	Count uint32
	Unit  Unit
}

const periodFormatHint = "`n <period>` where `n` is a number and " +
	"`<period>` is one of `days`, `weeks`, `months` or `years`"

// ParsePeriod parses `[n] unit`. The count defaults to 1 when omitted,
// so both "3 weeks" and "week" are valid.
func ParsePeriod(value string) (Period, error) {
	countStr, unitStr, ok := strings.Cut(value, " ")
	if !ok {
		countStr, unitStr = "1", value
	}
	count, err := strconv.ParseUint(countStr, 10, 32)
	if err != nil {
		return Period{}, parseErr("period", value, periodFormatHint)
	}
	switch unitStr {
	case "day", "days":
		return Period{Count: uint32(count), Unit: Days}, nil
	case "week", "weeks":
		return Period{Count: uint32(count), Unit: Weeks}, nil
	case "month", "months":
		return Period{Count: uint32(count), Unit: Months}, nil
	case "year", "years":
		return Period{Count: uint32(count), Unit: Years}, nil
	}
	return Period{}, parseErr("period", value, periodFormatHint)
}

// PeriodOfDays builds a day-denominated period, the form the config file
// stores.
func PeriodOfDays(days uint32) Period {
	return Period{Count: days, Unit: Days}
}

// Days converts the period to its day count.
func (p Period) Days() uint32 {
	return p.Count * daysPerUnit[p.Unit]
}

func (p Period) String() string {
	return strconv.FormatUint(uint64(p.Count), 10) + " " + unitNames[p.Unit]
}

// SinceToday returns the date the period of time ago, today minus the
// period's day count. Dates before the representable minimum clamp to it.
func (p Period) SinceToday() Date {
	return p.since(time.Now())
}

func (p Period) since(now time.Time) Date {
	then := now.AddDate(0, 0, -int(p.Days()))
	if then.Year() < 0 {
		return MinDate()
	}
	return dateOf(then)
}
