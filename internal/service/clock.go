package service

import (
	"fmt"
	"time"
)

// Clock supplies current time and the clinic's local timezone. All slot
// arithmetic happens in this location; storage stays in UTC. Mocked in tests.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

// NewClock loads the configured timezone once so other components never
// convert UTC/local on their own.
func NewClock(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &realClock{loc: loc}, nil
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *realClock) Location() *time.Location {
	return c.loc
}
