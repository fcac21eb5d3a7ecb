package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnch-cli/pnch/internal/clock"
	"github.com/pnch-cli/pnch/internal/codec"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		value   string
		want    clock.Date
		wantErr bool
	}{
		{value: "2026-08-30", want: clock.Date{Year: 2026, Month: 8, Day: 30}},
		{value: "0001-01-01", want: clock.Date{Year: 1, Month: 1, Day: 1}},
		{value: "2026-8-3", want: clock.Date{Year: 2026, Month: 8, Day: 3}},
		{value: "2026-08", wantErr: true},
		{value: "30-08-2026", wantErr: true},
		{value: "yyyy-mm-dd", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := clock.ParseDate(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "ParseDate(%q)", tt.value)
			continue
		}
		require.NoError(t, err, "ParseDate(%q)", tt.value)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		value   string
		want    clock.Time
		wantErr bool
	}{
		{value: "09:00", want: clock.Time{Hours: 9}},
		{value: "9:00", want: clock.Time{Hours: 9}},
		{value: "23:59", want: clock.Time{Hours: 23, Minutes: 59}},
		{value: "0900", wantErr: true},
		{value: "hh:mm", wantErr: true},
		{value: "9:300", wantErr: true},
	}
	for _, tt := range tests {
		got, err := clock.ParseTime(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "ParseTime(%q)", tt.value)
			continue
		}
		require.NoError(t, err, "ParseTime(%q)", tt.value)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		value    string
		wantDays uint32
		wantErr  bool
	}{
		{value: "3 days", wantDays: 3},
		{value: "1 day", wantDays: 1},
		{value: "2 weeks", wantDays: 14},
		{value: "week", wantDays: 7},
		{value: "month", wantDays: 30},
		{value: "56 months", wantDays: 1680},
		{value: "year", wantDays: 365},
		{value: "2 fortnights", wantErr: true},
		{value: "two weeks", wantErr: true},
		{value: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := clock.ParsePeriod(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "ParsePeriod(%q)", tt.value)
			continue
		}
		require.NoError(t, err, "ParsePeriod(%q)", tt.value)
		assert.Equal(t, tt.wantDays, got.Days(), "ParsePeriod(%q).Days()", tt.value)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := clock.Date{Year: 2026, Month: 8, Day: 30}
	got, err := clock.DecodeDate(d.Encode())
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDecodeDateWrongLength(t *testing.T) {
	_, err := clock.DecodeDate([]byte{1, 2, 3})
	require.ErrorIs(t, err, codec.ErrWrongByteLen)
	assert.Contains(t, err.Error(), "date")
}

func TestOptTimeRoundTrip(t *testing.T) {
	present := &clock.Time{Hours: 17, Minutes: 5}
	got, err := clock.DecodeOptTime(clock.EncodeOptTime(present))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *present, *got)

	absent, err := clock.DecodeOptTime(clock.EncodeOptTime(nil))
	require.NoError(t, err)
	assert.Nil(t, absent)
	assert.Equal(t, []byte{0xFF, 0xFF}, clock.EncodeOptTime(nil))
}

func TestDecodeOptTimeWrongLength(t *testing.T) {
	_, err := clock.DecodeOptTime([]byte{9})
	assert.ErrorIs(t, err, codec.ErrWrongByteLen)
}

func TestDateCompare(t *testing.T) {
	earlier := clock.Date{Year: 2026, Month: 8, Day: 29}
	later := clock.Date{Year: 2026, Month: 8, Day: 30}
	assert.Equal(t, -1, earlier.Compare(later))
	assert.Equal(t, 1, later.Compare(earlier))
	assert.Equal(t, 0, later.Compare(later))
	assert.Equal(t, -1, clock.MinDate().Compare(earlier))
	assert.Equal(t, 1, clock.MaxDate().Compare(later))
}

func TestTimeCompare(t *testing.T) {
	assert.Equal(t, -1, clock.Time{Hours: 8, Minutes: 30}.Compare(clock.Time{Hours: 9}))
	assert.Equal(t, 1, clock.Time{Hours: 9, Minutes: 1}.Compare(clock.Time{Hours: 9}))
	assert.Equal(t, 0, clock.Time{Hours: 9}.Compare(clock.Time{Hours: 9}))
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		minutes clock.Duration
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{90, "1h 30m"},
		{125, "2h 05m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.minutes.String())
	}
}

func TestTimeSince(t *testing.T) {
	in := clock.Time{Hours: 9, Minutes: 15}
	out := clock.Time{Hours: 10, Minutes: 45}
	assert.Equal(t, clock.Duration(90), out.Since(in))
	assert.Equal(t, clock.Duration(0), in.Since(in))
}
