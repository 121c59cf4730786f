package event

import "time"

// Clock provides time for timer deadlines. The default implementation uses
// system time; tests inject a fake clock via Manager.SetClock to fire
// timers deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
