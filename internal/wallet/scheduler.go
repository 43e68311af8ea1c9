package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultCheckInterval = 10 * time.Minute

type manifestChecker interface {
	CheckManifest(ctx context.Context) error
}

type Scheduler struct {
	checker  manifestChecker
	interval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

// Start runs the manifest check once immediately and then every interval.
func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if checkErr := s.checker.CheckManifest(jobCtx); checkErr != nil {
			logrus.WithError(checkErr).WithField("exec_id", execID).Warn("Wallet manifest check failed")
			return
		}
		logrus.WithField("exec_id", execID).Debug("Wallet manifest check passed")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	scheduler.Start()
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(checker manifestChecker, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &Scheduler{checker: checker, interval: interval}
}
