package timeutil

import (
	"time"
)

// TimeUTC is a small helper type representing Unix time (in seconds) in UTC.
// Using a dedicated type prevents confusion between local and UTC timestamps.
type TimeUTC struct{ T int64 }

func NowUTC() TimeUTC {
	return TimeUTC{T: time.Now().UTC().Unix()}
}

func FromUnix(sec int64) TimeUTC {
	return TimeUTC{T: sec}
}

func (t TimeUTC) After(other TimeUTC) bool  { return t.T > other.T }
func (t TimeUTC) Before(other TimeUTC) bool { return t.T < other.T }

func (t TimeUTC) AddSeconds(sec int64) TimeUTC {
	return TimeUTC{T: t.T + sec}
}

// SecondsSince returns the elapsed seconds between t and an earlier
// timestamp. Negative when other lies in the future.
func (t TimeUTC) SecondsSince(other TimeUTC) int64 {
	return t.T - other.T
}
