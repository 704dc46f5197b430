package tasks

import "context"

// ScheduledTaskFunc defines the standard signature for all scheduled tasks.
// The context provided by the scheduler should be respected for cancellation.
// A returned error is logged by the scheduler; it never stops the schedule.
type ScheduledTaskFunc func(ctx context.Context) error

// Task names, shared with the scheduler's job definitions.
const (
	TaskReminderScan       = "reminder_scan"
	TaskDailyReset         = "daily_reset"
	TaskHistoryMaintenance = "history_maintenance"
)

// RegisterAllTasks initializes and returns a map of all registered scheduled
// tasks, keyed by task name.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		TaskReminderScan:       newReminderScanTask(deps),
		TaskDailyReset:         newDailyResetTask(deps),
		TaskHistoryMaintenance: newHistoryMaintenanceTask(deps),
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
