package service

import "time"

// Clock is the source of every "now" written by the services.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() Clock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
