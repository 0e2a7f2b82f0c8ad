package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// KeyGenerator builds record keys for appointments and reports from an identity prefix.
type KeyGenerator interface {
	NewKey(prefix string) string
}

// TimestampKeys produces "<prefix>-<unix millis>". The millisecond value never
// repeats or goes backwards within one process; separate processes booking for
// the same prefix in the same millisecond can still collide.
type TimestampKeys struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestampKeys(now func() time.Time) *TimestampKeys {
	if now == nil {
		now = time.Now
	}
	return &TimestampKeys{now: now}
}

func (k *TimestampKeys) NewKey(prefix string) string {
	k.mu.Lock()
	ms := k.now().UnixMilli()
	if ms <= k.last {
		ms = k.last + 1
	}
	k.last = ms
	k.mu.Unlock()
	return fmt.Sprintf("%s-%d", prefix, ms)
}

// UUIDKeys produces "<prefix>-<random uuid>".
type UUIDKeys struct{}

func (UUIDKeys) NewKey(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewKeyGenerator picks a strategy by name: "timestamp" (default) or "uuid".
func NewKeyGenerator(strategy string, now func() time.Time) (KeyGenerator, error) {
	switch strategy {
	case "", "timestamp":
		return NewTimestampKeys(now), nil
	case "uuid":
		return UUIDKeys{}, nil
	}
	return nil, fmt.Errorf("unknown key strategy %q", strategy)
}
