package tasks

import (
	"context"
	"fmt"
	"time"
)

// newHistoryMaintenanceTask creates the scheduled task that prunes old
// history events and compacts the database.
func newHistoryMaintenanceTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", TaskHistoryMaintenance)

	return func(ctx context.Context) error {
		if deps.History == nil {
			return nil
		}

		startTime := time.Now()
		retention := time.Duration(deps.Config.History.RetentionDays) * 24 * time.Hour

		if err := deps.History.RunMaintenance(ctx, retention); err != nil {
			return fmt.Errorf("history maintenance failed: %w", err)
		}

		log.InfoContext(ctx, "History maintenance task completed", "duration", time.Since(startTime))
		return nil
	}
}
