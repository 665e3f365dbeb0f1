package monitor

import (
	"time"
)

// Stats summarises a monitoring session
type Stats struct {
	Lines     uint32 // decoded successfully
	Rejected  uint32 // failed to decode
	Overflows uint32 // overlong lines dropped by the splitter
	Early     uint32 // interval shorter than the tolerance window
	Late      uint32 // interval longer than the tolerance window

	MinInterval time.Duration
	MaxInterval time.Duration
	sumInterval time.Duration
	intervals   uint32
}

// MeanInterval returns the average gap between consecutive good lines
func (s Stats) MeanInterval() time.Duration {
	if s.intervals == 0 {
		return 0
	}
	return s.sumInterval / time.Duration(s.intervals)
}

// observe folds one interval into the stats and reports whether it was on time
func (s *Stats) observe(interval, period time.Duration, tolerance float64) bool {
	if s.intervals == 0 || interval < s.MinInterval {
		s.MinInterval = interval
	}
	if interval > s.MaxInterval {
		s.MaxInterval = interval
	}
	s.sumInterval += interval
	s.intervals++

	slack := time.Duration(float64(period) * tolerance)
	switch {
	case interval < period-slack:
		s.Early++
		return false
	case interval > period+slack:
		s.Late++
		return false
	}
	return true
}
