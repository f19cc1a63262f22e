package circuit_breaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(ctx context.Context, fn func(ctx context.Context) error) error
	State() Status
	Reset()
}

type Config struct {
	// RecordLength is the size of the sliding window of recent outcomes.
	RecordLength int `envconfig:"CB_RECORD_LENGTH" default:"20"`
	// Timeout is how long the breaker stays open before letting a probe through.
	Timeout time.Duration `envconfig:"CB_TIMEOUT" default:"5s"`
	// Percentile of failures in the window that opens the breaker.
	Percentile float64 `envconfig:"CB_PERCENTILE" default:"0.5"`
	// RecoveryRequests is the number of consecutive half-open successes needed to close.
	RecoveryRequests int `envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

type Option func(cb *circuitBreaker)

// WithFailureFilter decides which errors count as failures. Errors rejected by the
// filter are returned to the caller but recorded as successes (e.g. cache misses).
func WithFailureFilter(isFailure func(error) bool) Option {
	return func(cb *circuitBreaker) {
		cb.isFailure = isFailure
	}
}

func WithClock(now func() time.Time) Option {
	return func(cb *circuitBreaker) {
		cb.now = now
	}
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status

	recordLength     int
	timeout          time.Duration
	percentile       float64
	recoveryRequests int

	openedAt     time.Time
	buffer       []bool
	pos          int
	successCount int

	isFailure func(error) bool
	now       func() time.Time
}

func New(cfg Config, opts ...Option) CircuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	cb := &circuitBreaker{
		state:            Closed,
		recordLength:     cfg.RecordLength,
		timeout:          cfg.Timeout,
		percentile:       cfg.Percentile,
		buffer:           make([]bool, cfg.RecordLength),
		recoveryRequests: cfg.RecoveryRequests,
		isFailure:        func(err error) bool { return err != nil },
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.timeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn(ctx)
	// the caller giving up is not the dependency failing
	failed := err != nil && cb.isFailure(err) && ctx.Err() == nil

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = failed
	cb.pos = (cb.pos + 1) % cb.recordLength

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return err
	}

	fails := 0
	for _, f := range cb.buffer {
		if f {
			fails++
		}
	}
	if fails > 0 && float64(fails)/float64(cb.recordLength) >= cb.percentile {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
