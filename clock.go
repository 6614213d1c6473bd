package uuidx

import "time"

// Clock supplies the current instant to the time-based generators.
// Substituting a fixed implementation makes v6/v7 output deterministic
// in tests without touching production call sites.
type Clock interface {
	Now() time.Time
}

// systemClock reads the host's wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
