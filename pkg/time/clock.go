package time

import (
	"context"
	"time"
)

type Clock interface {
	Now(context.Context) time.Time
}

type systemClock struct{}

func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now(context.Context) time.Time {
	return time.Now()
}

type fixedClock struct {
	t time.Time
}

func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

func (c fixedClock) Now(context.Context) time.Time {
	return c.t
}
