package tasks

import (
	"context"
	"fmt"
)

// newDailyResetTask creates the scheduled task that clears every user's
// daily task list. The scheduler fires it at local midnight in the reference
// timezone and realigns each cycle, so a delayed run never causes permanent
// drift. A persistence failure is reported but must never stop the schedule;
// in-memory state is already cleared and remains correct.
func newDailyResetTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", TaskDailyReset)

	return func(ctx context.Context) error {
		cleared := deps.Store.Len()
		saveErr := deps.Store.ClearDailyTasks()

		if deps.History != nil {
			if err := deps.History.RecordReset(ctx, cleared, deps.now()); err != nil {
				log.WarnContext(ctx, "Failed to record reset in history", "error", err)
			}
		}

		if saveErr != nil {
			// State is cleared in memory but may not be durable; surface to
			// the operator and carry on.
			return fmt.Errorf("daily tasks cleared but persistence failed: %w", saveErr)
		}

		log.InfoContext(ctx, "Daily tasks cleared", "users", cleared)
		return nil
	}
}
