package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from:
//  1. Default values
//  2. The YAML file at path (optional; missing file is not an error)
//  3. BOT_* environment variables (e.g. BOT_TELEGRAM_TOKEN)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine: defaults plus environment variables
	// remain in effect. viper reports the absence differently depending on
	// whether the file was searched for or named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Registering the key lets AutomaticEnv pick up BOT_TELEGRAM_TOKEN even
	// when the config file omits the section entirely.
	v.SetDefault("telegram.token", "")

	v.SetDefault("store.dir", "user_data")
	v.SetDefault("history.path", "history.db")
	v.SetDefault("history.retention_days", 90)
	v.SetDefault("scheduler.timezone", "Europe/Moscow")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("messages.welcome", "Hi! I help you build habits and track daily tasks. Choose an action:")
	v.SetDefault("messages.help", "Available commands:\n"+
		"1. 'Add habit' - register a long-term habit.\n"+
		"2. 'Add reminder' - attach a daily reminder to a habit.\n"+
		"3. 'Add task' - add a task to today's list.\n"+
		"4. 'View tasks' - show today's tasks.\n"+
		"5. 'View habits' - show your habits.\n"+
		"6. 'View reminders' - show your reminders.")
	v.SetDefault("messages.unknown", "Sorry, I don't know that one. Try one of the menu commands.")

	v.SetDefault("messages.prompt_habit", "Enter a new habit:")
	v.SetDefault("messages.habit_added", "Habit '%s' added!")

	v.SetDefault("messages.no_habits_yet", "Add some habits first!")
	v.SetDefault("messages.prompt_reminder", "Choose a habit for the reminder:\n%s\n\nEnter the time (HH:MM) and the habit number:")
	v.SetDefault("messages.reminder_bad_format", "Wrong format. Use: 'HH:MM <habit number>'")
	v.SetDefault("messages.reminder_bad_time", "Invalid time. Use HH:MM between 00:00 and 23:59.")
	v.SetDefault("messages.reminder_bad_habit_index", "Invalid habit number.")
	v.SetDefault("messages.reminder_set", "Reminder for '%s' set at %s!")

	v.SetDefault("messages.prompt_task", "Enter a task:")
	v.SetDefault("messages.task_added", "Task '%s' added to today's list!")

	v.SetDefault("messages.tasks_header", "Your tasks for today:")
	v.SetDefault("messages.no_tasks", "You have no tasks for today.")
	v.SetDefault("messages.habits_header", "Your habits:")
	v.SetDefault("messages.no_habits", "You have no habits.")
	v.SetDefault("messages.reminders_header", "Your reminders:")
	v.SetDefault("messages.no_reminders", "You have no reminders.")

	v.SetDefault("messages.reminder_fired", "Time for your habit: %s")
	v.SetDefault("messages.save_failed", "Warning: your change may not have been saved. Please try again.")

	v.SetDefault("menu.add_habit", "Add habit")
	v.SetDefault("menu.add_reminder", "Add reminder")
	v.SetDefault("menu.add_task", "Add task")
	v.SetDefault("menu.view_tasks", "View tasks")
	v.SetDefault("menu.view_habits", "View habits")
	v.SetDefault("menu.view_reminders", "View reminders")
	v.SetDefault("menu.commands", "Commands")
}
