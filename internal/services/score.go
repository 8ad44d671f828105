package services

import (
	"driver-allocation-service/internal/domain"
	"time"
)

// Score buckets, checked in order; a gap below Below earns Score.
var scoreBuckets = []struct {
	Below time.Duration
	Score int
}{
	{15 * time.Minute, 500},
	{30 * time.Minute, 250},
	{60 * time.Minute, 75},
	{90 * time.Minute, 10},
}

// Score for gaps of 90 minutes or more. Negative so that leaving a route
// unassigned beats a badly mismatched driver.
const mismatchScore = -100

// Gap returns the absolute difference between two start times.
func Gap(a, b domain.TimeOfDay) time.Duration {
	d := a.Duration() - b.Duration()
	if d < 0 {
		return -d
	}
	return d
}

// ScoreGap maps a start-time gap to its desirability.
func ScoreGap(gap time.Duration) int {
	if gap < 0 {
		gap = -gap
	}
	for _, b := range scoreBuckets {
		if gap < b.Below {
			return b.Score
		}
	}
	return mismatchScore
}

// Score returns the desirability of pairing two start times. It is symmetric.
func Score(a, b domain.TimeOfDay) int {
	return ScoreGap(Gap(a, b))
}
