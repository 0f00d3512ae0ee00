package worker

import (
	"context"
	"time"

	"skilllink/internal/usecase"

	"go.uber.org/zap"
)

// ExpirySweeper periodically expires pending bookings whose scheduled
// start has passed. It runs one sweep immediately on Start and then
// once per interval until Stop or context cancellation.

type ExpirySweeper struct {
	lifecycle usecase.IBookingLifecycleUseCase
	log       *zap.Logger
	interval  time.Duration
	stop      chan struct{}
	done      chan struct{}
}

func NewExpirySweeper(lifecycle usecase.IBookingLifecycleUseCase, log *zap.Logger, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		lifecycle: lifecycle,
		log:       log,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (s *ExpirySweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop signals the sweep loop and waits for it to exit.
func (s *ExpirySweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *ExpirySweeper) run(ctx context.Context) {
	defer close(s.done)

	s.log.Info("expiry sweeper started", zap.Duration("interval", s.interval))
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			s.log.Info("expiry sweeper stopped")
			return
		case <-ctx.Done():
			s.log.Info("expiry sweeper stopped", zap.Error(ctx.Err()))
			return
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	count, issues, err := s.lifecycle.ExpirePendingBatch(ctx)
	if err != nil {
		s.log.Error("expiry sweep failed", zap.Error(err))
		return
	}
	for _, issue := range issues {
		s.log.Warn("booking schedule could not be parsed",
			zap.String("booking_id", issue.BookingID),
			zap.Error(issue.Err),
		)
	}
	if count > 0 {
		s.log.Info("expired stale bookings", zap.Int("count", count))
	}
}
