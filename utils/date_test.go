package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDay_UsesLocation(t *testing.T) {
	ts := time.Date(2026, 10, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "14.10.2026", FormatDay(ts, time.UTC))

	plus3 := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "15.10.2026", FormatDay(ts, plus3))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("01.02.2026", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "01.02.2026", day)

	for _, bad := range []string{"", "2026-02-01", "32.01.2026", "1.2.2026", "today"} {
		_, err := ParseDay(bad, time.UTC)
		assert.Error(t, err, bad)
	}
}
