package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundToStep(t *testing.T) {
	require.Equal(t, 540, roundToStep(547, 15)) // 09:07 -> 09:00
	require.Equal(t, 555, roundToStep(548, 15)) // 09:08 -> 09:15
	require.Equal(t, 540, roundToStep(540, 15))
	require.Equal(t, 0, roundToStep(7, 15))
	require.Equal(t, 547, roundToStep(547, 0)) // no grid configured
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "12:00 AM", formatTime(0))
	require.Equal(t, "9:07 AM", formatTime(547))
	require.Equal(t, "12:30 PM", formatTime(750))
	require.Equal(t, "5:00 PM", formatTime(1020))
}
