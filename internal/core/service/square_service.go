package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/kata/internal/core/domain"
	"github.com/rl1809/kata/internal/port"
)

const DefaultSquareDelay = 1000 * time.Millisecond

type Squarer struct {
	scheduler port.Scheduler
	delay     time.Duration
	logger    *zap.Logger
}

func NewSquarer(scheduler port.Scheduler, delay time.Duration, logger *zap.Logger) *Squarer {
	if delay <= 0 {
		delay = DefaultSquareDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Squarer{
		scheduler: scheduler,
		delay:     delay,
		logger:    logger,
	}
}

func (s *Squarer) Delay() time.Duration {
	return s.delay
}

// SquareAsync resolves to n*n after the configured delay. Non-positive input
// is rejected with domain.ErrNegativeInput before anything is scheduled.
func (s *Squarer) SquareAsync(n float64) *Future[float64] {
	if !(n > 0) {
		return rejected[float64](domain.ErrNegativeInput)
	}

	f := newFuture[float64]()
	s.logger.Debug("square scheduled", zap.Float64("n", n), zap.Duration("delay", s.delay))
	s.scheduler.AfterFunc(s.delay, func() {
		f.fulfill(n * n)
	})
	return f
}
