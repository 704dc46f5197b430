package tasks

import (
	"context"
	"fmt"
)

// newReminderScanTask creates the scheduled task that fires due reminders.
//
// Each wake samples the wall clock once, truncated to HH:MM in the reference
// timezone, and compares it by exact string match against every stored
// reminder. One notification is emitted per matching entry; duplicate entries
// fire independently. There is no tolerance window and no catch-up: a wake
// delayed past a minute boundary silently misses that minute, and two wakes
// landing in the same minute would fire twice. Best-effort by design.
func newReminderScanTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", TaskReminderScan)

	return func(ctx context.Context) error {
		sample := deps.now().In(deps.Location).Format("15:04")

		due := deps.Store.DueReminders(sample)
		if len(due) == 0 {
			return nil
		}

		for _, d := range due {
			deps.Notifier.Deliver(ctx, d.UserID, fmt.Sprintf(deps.Config.Messages.ReminderFired, d.Habit))

			if deps.History != nil {
				if err := deps.History.RecordDelivery(ctx, d.UserID, d.Habit, deps.now()); err != nil {
					log.WarnContext(ctx, "Failed to record delivery in history", "user_id", d.UserID, "error", err)
				}
			}
		}

		log.InfoContext(ctx, "Fired reminders", "time", sample, "count", len(due))
		return nil
	}
}
