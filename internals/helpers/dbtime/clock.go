// file: internals/helpers/dbtime/clock.go
package dbtime

import "time"

// Clock menyuplai "now" supaya logika periode/timestamp bisa dites deterministik.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock untuk test.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }
