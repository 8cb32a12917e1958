package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"19:59", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"09-30", false},
		{" 09:30", false},
		{"09:30 ", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidClockTime(tt.in))
		})
	}
}

func TestParseClockTime(t *testing.T) {
	hour, minute, err := ParseClockTime("07:05")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 5, minute)

	_, _, err = ParseClockTime("7:5")
	require.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestMinutesBetween(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		want    int
	}{
		{"day shift", "09:00", "17:30", 510},
		{"overnight shift", "22:00", "06:00", 480},
		{"same time is zero", "08:15", "08:15", 0},
		{"one minute before midnight", "23:59", "00:00", 1},
		{"longest representable shift", "00:01", "00:00", MinutesPerDay - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MinutesBetween(tt.in, tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesBetweenRejectsMalformedInput(t *testing.T) {
	_, err := MinutesBetween("25:00", "06:00")
	require.ErrorIs(t, err, ErrInvalidClockTime)

	_, err = MinutesBetween("09:00", "")
	require.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestMinutesBetweenIsPure(t *testing.T) {
	first, err := MinutesBetween("22:00", "06:00")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := MinutesBetween("22:00", "06:00")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFormatMinutesToHHMM(t *testing.T) {
	assert.Equal(t, "8:30", FormatMinutesToHHMM(510))
	assert.Equal(t, "0:00", FormatMinutesToHHMM(0))
	assert.Equal(t, "0:05", FormatMinutesToHHMM(5))
	assert.Equal(t, "23:59", FormatMinutesToHHMM(MinutesPerDay-1))
	assert.Equal(t, "10:00", FormatMinutesToHHMM(600))
}

func TestMinutesToDecimalHours(t *testing.T) {
	assert.Equal(t, 8.5, MinutesToDecimalHours(510))
	assert.Equal(t, 8.0, MinutesToDecimalHours(480))
	assert.Equal(t, 0.0, MinutesToDecimalHours(0))
	assert.InDelta(t, 0.3333, MinutesToDecimalHours(20), 0.0001)
}
