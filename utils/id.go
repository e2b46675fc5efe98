package utils

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator hands out decimal millisecond timestamps, strictly increasing
// within one process even when called twice in the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithClock is for tests that need deterministic ids.
func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

func (g *IDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
