package util

import (
	"log/slog"
	"time"
)

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

func TimeThis(msg string, start time.Time) {
	slog.Info(msg, "elapsed", time.Since(start))
}

// Rate returns operations per second for n operations over d
func Rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
