package gameutil

import (
	"math"
	"time"
)

// DaysElapsed returns the number of whole days between the calendar date of
// drawDate and now, measured in the location of now.
func DaysElapsed(drawDate, now time.Time) int {
	y, m, d := drawDate.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(math.Floor(now.Sub(start).Hours() / 24))
}
