package gameutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DaysElapsed(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	drawDate := time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "same day", now: time.Date(2025, time.January, 4, 23, 59, 0, 0, loc), want: 0},
		{name: "next day", now: time.Date(2025, time.January, 5, 0, 0, 0, 0, loc), want: 1},
		{name: "one week", now: time.Date(2025, time.January, 11, 12, 0, 0, 0, loc), want: 7},
		{name: "eight days", now: time.Date(2025, time.January, 12, 8, 0, 0, 0, loc), want: 8},
		{name: "before draw", now: time.Date(2025, time.January, 3, 12, 0, 0, 0, loc), want: -1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DaysElapsed(drawDate, tt.now))
		})
	}
}
