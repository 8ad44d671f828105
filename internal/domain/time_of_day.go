package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is an offset from midnight. Comparisons never wrap past midnight.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from hours and minutes.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

var timeOfDayLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
	"03:04 PM",
	"03:04:05 PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Spreadsheet serials run from day 0 up to 9999-12-31.
const maxSerial = 2958466

// Whole-number serials below this (1970-01-01) are not read as dates at midnight.
const minDateSerial = 25569

// ParseTimeOfDay reads a start time as typed into a roster cell.
// Spreadsheet serial values ("0.375" = 09:00) are accepted as well.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, fmt.Errorf("parse time of day: empty value")
	}

	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		return NewTimeOfDay(t.Hour(), t.Minute()) + TimeOfDay(time.Duration(t.Second())*time.Second), nil
	}

	// Serial day fraction; the integer part (a date) is discarded.
	if f, ok := parseSerial(v); ok {
		_, frac := splitSerial(f)
		d := time.Duration(frac * float64(24*time.Hour)).Round(time.Second)
		if d >= 24*time.Hour {
			d = 0
		}
		return TimeOfDay(d), nil
	}

	return 0, fmt.Errorf("parse time of day: unrecognised value %q", s)
}

// parseSerial accepts finite serials in range. Bare whole numbers such as "17"
// are rejected unless they are 0 or plausible date serials.
func parseSerial(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < 0 || f >= maxSerial {
		return 0, false
	}
	if f == math.Trunc(f) && f != 0 && f < minDateSerial {
		return 0, false
	}
	return f, true
}

func splitSerial(f float64) (int64, float64) {
	whole := int64(f)
	return whole, f - float64(whole)
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration { return time.Duration(t) }

// String renders HH:MM, or HH:MM:SS when seconds are present.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
