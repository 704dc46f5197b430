// Package config provides configuration loading, validation, and defaults
// for the HabitBot application. Values come from a YAML file, BOT_-prefixed
// environment variables, and built-in defaults, in that order of precedence.
package config

import "github.com/go-telegram/bot/models"

// Config defines the application configuration parameters for all components
// of the HabitBot system: transport, storage, schedulers, logging, and every
// user-visible string.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Store     StoreConfig     `mapstructure:"store"`
	History   HistoryConfig   `mapstructure:"history"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Menu      MenuConfig      `mapstructure:"menu"`
}

// TelegramConfig holds transport settings.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// BotInfo is populated at runtime after GetMe, not from configuration.
	BotInfo *models.User `mapstructure:"-"`
}

// StoreConfig holds the user record store settings.
type StoreConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// HistoryConfig holds the delivery history database settings.
type HistoryConfig struct {
	Path          string `mapstructure:"path"           validate:"required"`
	RetentionDays int    `mapstructure:"retention_days" validate:"min=1,max=3650"`
}

// SchedulerConfig holds the fixed reference timezone used by both the
// reminder scan and the midnight reset.
type SchedulerConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// MessagesConfig holds every user-visible response string. Strings containing
// %s are format templates filled in by the handlers.
type MessagesConfig struct {
	Welcome string `mapstructure:"welcome" validate:"required"`
	Help    string `mapstructure:"help"    validate:"required"`
	Unknown string `mapstructure:"unknown" validate:"required"`

	PromptHabit string `mapstructure:"prompt_habit" validate:"required"`
	HabitAdded  string `mapstructure:"habit_added"  validate:"required"`

	NoHabitsYet           string `mapstructure:"no_habits_yet"            validate:"required"`
	PromptReminder        string `mapstructure:"prompt_reminder"          validate:"required"`
	ReminderBadFormat     string `mapstructure:"reminder_bad_format"      validate:"required"`
	ReminderBadTime       string `mapstructure:"reminder_bad_time"        validate:"required"`
	ReminderBadHabitIndex string `mapstructure:"reminder_bad_habit_index" validate:"required"`
	ReminderSet           string `mapstructure:"reminder_set"             validate:"required"`

	PromptTask string `mapstructure:"prompt_task" validate:"required"`
	TaskAdded  string `mapstructure:"task_added"  validate:"required"`

	TasksHeader     string `mapstructure:"tasks_header"     validate:"required"`
	NoTasks         string `mapstructure:"no_tasks"         validate:"required"`
	HabitsHeader    string `mapstructure:"habits_header"    validate:"required"`
	NoHabits        string `mapstructure:"no_habits"        validate:"required"`
	RemindersHeader string `mapstructure:"reminders_header" validate:"required"`
	NoReminders     string `mapstructure:"no_reminders"     validate:"required"`

	ReminderFired string `mapstructure:"reminder_fired" validate:"required"`
	SaveFailed    string `mapstructure:"save_failed"    validate:"required"`
}

// MenuConfig holds the reply keyboard labels. The labels double as the
// dispatch keys for the text command router.
type MenuConfig struct {
	AddHabit      string `mapstructure:"add_habit"      validate:"required"`
	AddReminder   string `mapstructure:"add_reminder"   validate:"required"`
	AddTask       string `mapstructure:"add_task"       validate:"required"`
	ViewTasks     string `mapstructure:"view_tasks"     validate:"required"`
	ViewHabits    string `mapstructure:"view_habits"    validate:"required"`
	ViewReminders string `mapstructure:"view_reminders" validate:"required"`
	Commands      string `mapstructure:"commands"       validate:"required"`
}
