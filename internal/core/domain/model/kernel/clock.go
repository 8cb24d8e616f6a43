package kernel

import "time"

// Clock supplies the timestamps written to created_at and updated_at. The
// lifecycle engine never reads the wall clock directly so its decisions stay
// reproducible in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns the current UTC time truncated to microseconds, the
// precision postgres keeps for timestamptz.
func SystemClock() Clock {
	return ClockFunc(func() time.Time {
		return time.Now().UTC().Truncate(time.Microsecond)
	})
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}
