package domain

import "time"

// SystemClock is the wall-clock Clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
