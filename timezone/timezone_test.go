package timezone

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDaylightSaving_Winter(t *testing.T) {
	winter := time.Date(2025, time.January, 15, 18, 0, 0, 0, time.UTC)
	assert.False(t, IsDaylightSaving(winter))
}

func TestIsDaylightSaving_Summer(t *testing.T) {
	summer := time.Date(2025, time.July, 15, 18, 0, 0, 0, time.UTC)
	assert.True(t, IsDaylightSaving(summer))
}

func TestIsDaylightSaving_TransitionEdges(t *testing.T) {
	// DST 2025 in America/Chicago: starts Mar 9 02:00 CST, ends Nov 2 02:00 CDT.
	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"minute before spring forward", time.Date(2025, time.March, 9, 7, 59, 0, 0, time.UTC), false},
		{"minute after spring forward", time.Date(2025, time.March, 9, 8, 1, 0, 0, time.UTC), true},
		{"minute before fall back", time.Date(2025, time.November, 2, 6, 59, 0, 0, time.UTC), true},
		{"minute after fall back", time.Date(2025, time.November, 2, 7, 1, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDaylightSaving(tt.instant))
		})
	}
}

func TestCurrentOffsetLabel(t *testing.T) {
	restore := clock
	defer func() { clock = restore }()

	clock = clockwork.NewFakeClockAt(time.Date(2025, time.January, 15, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "GMT-6", CurrentOffsetLabel())

	clock = clockwork.NewFakeClockAt(time.Date(2025, time.July, 15, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "GMT-5", CurrentOffsetLabel())
}

func TestFormatHumanReadable(t *testing.T) {
	instant := time.Date(2025, time.December, 23, 21, 45, 0, 0, time.UTC)
	assert.Equal(t, "Dec 23, 2025, 3:45 PM", FormatHumanReadable(instant))
}

func TestFormatFullTimestamp(t *testing.T) {
	instant := time.Date(2025, time.December, 23, 21, 45, 0, 0, time.UTC)
	assert.Equal(t, "12/23/2025, 15:45:00", FormatFullTimestamp(instant))
}

func TestFormatting_Idempotent(t *testing.T) {
	instant := time.Date(2025, time.December, 23, 21, 45, 0, 0, time.UTC)

	first := FormatHumanReadable(instant)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, FormatHumanReadable(instant))
	}

	full := FormatFullTimestamp(instant)
	for i := 0; i < 10; i++ {
		require.Equal(t, full, FormatFullTimestamp(instant))
	}

	dst := IsDaylightSaving(instant)
	for i := 0; i < 10; i++ {
		require.Equal(t, dst, IsDaylightSaving(instant))
	}
}
