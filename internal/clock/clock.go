// Package clock provides the calendar values the tracker stores: dates,
// wall-clock times, relative periods and durations, together with their
// text grammars and fixed-width binary encodings.
package clock

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pnch-cli/pnch/internal/codec"
)

// Encoded sizes in bytes.
const (
	DateSize = 4 // year:2 LE, month:1, day:1
	TimeSize = 2 // hours:1, minutes:1
)

const (
	dateFormatHint = "`yyyy-mm-dd`"
	timeFormatHint = "`hh:mm` where `hh` are hours and `mm` are minutes"
)

// parseErr builds the error for a value that does not match its grammar.
func parseErr(kind, value, hint string) error {
	return fmt.Errorf("cannot parse the %s %q: the format should be %s", kind, value, hint)
}

// Date is a calendar date.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// MinDate is the smallest representable date, below any real one.
func MinDate() Date { return Date{} }

// MaxDate is the largest representable date, above any real one.
func MaxDate() Date { return Date{Year: 65535, Month: 12, Day: 31} }

// Today returns the current date in local time, or UTC when the local
// zone cannot be determined.
func Today() Date { return dateOf(time.Now()) }

func dateOf(t time.Time) Date {
	year, month, day := t.Date()
	if year < 0 || year > 65535 {
		year = 0
	}
	return Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}
}

// Compare orders two dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(o Date) int {
	a := [3]int{int(d.Year), int(d.Month), int(d.Day)}
	b := [3]int{int(o.Year), int(o.Month), int(o.Day)}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Encode serializes the date as year (little-endian), month, day.
func (d Date) Encode() []byte {
	buf := make([]byte, DateSize)
	binary.LittleEndian.PutUint16(buf, d.Year)
	buf[2] = d.Month
	buf[3] = d.Day
	return buf
}

// DecodeDate decodes a 4-byte date chunk.
func DecodeDate(chunk []byte) (Date, error) {
	if len(chunk) != DateSize {
		return Date{}, codec.WrongByteLen("date", len(chunk), DateSize)
	}
	return Date{
		Year:  binary.LittleEndian.Uint16(chunk),
		Month: chunk[2],
		Day:   chunk[3],
	}, nil
}

// ParseDate parses a `yyyy-mm-dd` date.
func ParseDate(value string) (Date, error) {
	parts := strings.SplitN(value, "-", 3)
	if len(parts) != 3 {
		return Date{}, parseErr("date", value, dateFormatHint)
	}
	year, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Date{}, parseErr("date", value, dateFormatHint)
	}
	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Date{}, parseErr("date", value, dateFormatHint)
	}
	day, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Date{}, parseErr("date", value, dateFormatHint)
	}
	return Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}, nil
}

// Time is a wall-clock time with minute resolution.
type Time struct {
	Hours   uint8
	Minutes uint8
}

// noTime is the on-disk sentinel for an absent time.
var noTime = [TimeSize]byte{0xFF, 0xFF}

// Now returns the current local time, or UTC when the local zone cannot
// be determined.
func Now() Time {
	now := time.Now()
	return Time{Hours: uint8(now.Hour()), Minutes: uint8(now.Minute())}
}

// Compare orders two times within a day, returning -1, 0 or +1.
func (t Time) Compare(o Time) int {
	a := int(t.Hours)*60 + int(t.Minutes)
	b := int(o.Hours)*60 + int(o.Minutes)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (t Time) String() string {
	return fmt.Sprintf("%d:%02d", t.Hours, t.Minutes)
}

// Encode serializes the time as hours then minutes.
func (t Time) Encode() []byte {
	return []byte{t.Hours, t.Minutes}
}

// EncodeOptTime serializes an optional time, writing the all-FF sentinel
// when the time is absent.
func EncodeOptTime(t *Time) []byte {
	if t == nil {
		return []byte{noTime[0], noTime[1]}
	}
	return t.Encode()
}

// DecodeTime decodes a 2-byte time chunk.
func DecodeTime(chunk []byte) (Time, error) {
	if len(chunk) != TimeSize {
		return Time{}, codec.WrongByteLen("time", len(chunk), TimeSize)
	}
	return Time{Hours: chunk[0], Minutes: chunk[1]}, nil
}

// DecodeOptTime decodes a 2-byte time chunk, mapping the all-FF sentinel
// to nil.
func DecodeOptTime(chunk []byte) (*Time, error) {
	if len(chunk) != TimeSize {
		return nil, codec.WrongByteLen("time", len(chunk), TimeSize)
	}
	if chunk[0] == noTime[0] && chunk[1] == noTime[1] {
		return nil, nil
	}
	return &Time{Hours: chunk[0], Minutes: chunk[1]}, nil
}

// ParseTime parses a `hh:mm` time.
func ParseTime(value string) (Time, error) {
	hoursStr, minutesStr, ok := strings.Cut(value, ":")
	if !ok {
		return Time{}, parseErr("time", value, timeFormatHint)
	}
	hours, err := strconv.ParseUint(hoursStr, 10, 8)
	if err != nil {
		return Time{}, parseErr("time", value, timeFormatHint)
	}
	minutes, err := strconv.ParseUint(minutesStr, 10, 8)
	if err != nil {
		return Time{}, parseErr("time", value, timeFormatHint)
	}
	return Time{Hours: uint8(hours), Minutes: uint8(minutes)}, nil
}

// Duration is a span of whole minutes.
type Duration int

// Since returns the duration from an earlier time to t.
func (t Time) Since(earlier Time) Duration {
	return Duration((int(t.Hours)-int(earlier.Hours))*60 + int(t.Minutes) - int(earlier.Minutes))
}

// String formats a duration as "2h 05m" or "45m".
func (d Duration) String() string {
	h := int(d) / 60
	m := int(d) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
