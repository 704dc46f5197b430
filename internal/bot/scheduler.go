package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/edgard/habitbot/internal/bot/tasks"
)

// Scheduler manages the background schedules using the gocron library:
// the reminder scan wakes every 60 seconds, the daily reset fires at local
// midnight in the reference timezone (gocron recomputes the next run from
// "now" each cycle, so a delayed run realigns instead of drifting), and
// history maintenance runs once a day off-peak.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	taskMap   map[string]tasks.ScheduledTaskFunc
	mu        sync.Mutex
	running   bool
}

// jobDefinitions binds each task name to its schedule.
func jobDefinitions() map[string]gocron.JobDefinition {
	return map[string]gocron.JobDefinition{
		tasks.TaskReminderScan: gocron.DurationJob(time.Minute),
		tasks.TaskDailyReset: gocron.DailyJob(1,
			gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		tasks.TaskHistoryMaintenance: gocron.DailyJob(1,
			gocron.NewAtTimes(gocron.NewAtTime(4, 0, 0))),
	}
}

// NewScheduler creates a new scheduler instance operating in loc.
func NewScheduler(logger *slog.Logger, loc *time.Location, taskMap map[string]tasks.ScheduledTaskFunc) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "scheduler")

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Scheduler{
		scheduler: s,
		logger:    log,
		taskMap:   taskMap,
	}, nil
}

// Start schedules all registered tasks and starts the scheduler's internal
// ticking. A task that fails is logged and fires again at its next scheduled
// time; no failure stops the schedule.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler is already running")
	}

	scheduledCount := 0
	for taskName, definition := range jobDefinitions() {
		taskFunc, exists := s.taskMap[taskName]
		if !exists {
			s.logger.Warn("Task not found in registry, skipping", "task_name", taskName)
			continue
		}

		_, err := s.scheduler.NewJob(
			definition,
			gocron.NewTask(
				func(ctx context.Context, name string) {
					startTime := time.Now()
					if taskErr := taskFunc(ctx); taskErr != nil {
						s.logger.Error("Scheduled task failed", "task_name", name, "error", taskErr)
					}
					s.logger.Debug("Finished scheduled task", "task_name", name, "duration", time.Since(startTime))
				},
				context.Background(),
				taskName,
			),
			gocron.WithName(taskName),
		)
		if err != nil {
			s.logger.Error("Failed to schedule task", "task_name", taskName, "error", err)
			continue
		}

		s.logger.Info("Scheduled task", "task_name", taskName)
		scheduledCount++
	}

	s.scheduler.Start()
	s.running = true
	s.logger.Info("Scheduler started", "tasks_scheduled", scheduledCount)

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs to complete.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		s.logger.Info("Scheduler is not running, nothing to stop.")
		return nil
	}

	err := s.scheduler.Shutdown()
	if err != nil {
		s.logger.Error("Error during scheduler shutdown", "error", err)
	} else {
		s.logger.Info("Scheduler stopped gracefully.")
	}

	s.running = false
	return err
}
