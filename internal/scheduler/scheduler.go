package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

type Pool interface {
	Refresh(ctx context.Context) error
	GetStandings() (string, error)
}

type Scheduler struct {
	s               gocron.Scheduler
	pool            Pool
	sendMessage     func(string) error
	refreshInterval time.Duration
	ctx             context.Context
}

// NewScheduler builds the job scheduler. sendMessage may be nil when no
// chat is configured; the standings posts are then skipped.
func NewScheduler(pool Pool, sendMessage func(string) error, refreshInterval time.Duration, timezone string) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location", "timezone", timezone, "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:               s,
		pool:            pool,
		sendMessage:     sendMessage,
		refreshInterval: refreshInterval,
		ctx:             context.Background(),
	}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx

	// Refresh - every interval, first run immediately
	_, err := s.s.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(s.refresh),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	if s.sendMessage != nil {
		// Standings - daily 7:30
		_, err = s.s.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
			gocron.NewTask(s.sendStandings),
		)
		if err != nil {
			return fmt.Errorf("failed to create standings job: %w", err)
		}

		// Game night standings - Saturday, Sunday, Monday 23:30
		_, err = s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(time.Saturday, time.Sunday, time.Monday), gocron.NewAtTimes(gocron.NewAtTime(23, 30, 0))),
			gocron.NewTask(s.sendStandings),
		)
		if err != nil {
			return fmt.Errorf("failed to create game night standings job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refresh() {
	if err := s.pool.Refresh(s.ctx); err != nil {
		slog.Error("Failed to refresh board", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.pool.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	if err := s.sendMessage(standings); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
