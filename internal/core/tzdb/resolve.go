package tzdb

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCivil is a calendar value outside its range, e.g. April 31
	ErrInvalidCivil = errors.New("tzdb: invalid civil date-time")
	// ErrLeapSecond is second 60, which the Go calendar cannot place
	ErrLeapSecond = errors.New("tzdb: leap second not representable")
	// ErrNonexistent is a local time skipped by a forward transition
	ErrNonexistent = errors.New("tzdb: local time does not exist in zone")
	// ErrAmbiguous is a local time repeated by a backward transition
	ErrAmbiguous = errors.New("tzdb: local time is ambiguous in zone")
)

// Civil is a calendar date and wall clock time with no zone attached
type Civil struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (c Civil) validate() error {
	if c.Month < 1 || c.Month > 12 || c.Day < 1 {
		return ErrInvalidCivil
	}
	// day 0 of the following month is the last day of this one
	if last := time.Date(c.Year, time.Month(c.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day(); c.Day > last {
		return ErrInvalidCivil
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 60 {
		return ErrInvalidCivil
	}
	if c.Second == 60 {
		return ErrLeapSecond
	}
	return nil
}

// probes are offsets from the naive instant where the zone offset is sampled; they span
// every offset a real zone can apply (within +-14h) on both sides of a transition
var probes = [...]int64{-86400, -43200, 0, 43200, 86400}

// Resolve maps c to the single Unix second at which clocks in loc read c.
// A time skipped by a transition yields ErrNonexistent, one that occurs twice ErrAmbiguous
func Resolve(loc *time.Location, c Civil) (int64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	wall := time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC).Unix()

	var found [len(probes)]int64
	n := 0
outer:
	for _, p := range probes {
		_, off := time.Unix(wall+p, 0).In(loc).Zone()
		cand := wall - int64(off)
		if _, got := time.Unix(cand, 0).In(loc).Zone(); got != off {
			continue
		}
		for _, f := range found[:n] {
			if f == cand {
				continue outer
			}
		}
		found[n] = cand
		n++
	}

	switch n {
	case 0:
		return 0, ErrNonexistent
	case 1:
		return found[0], nil
	default:
		return 0, ErrAmbiguous
	}
}
