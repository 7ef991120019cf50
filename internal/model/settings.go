package model

// Settings is the single per-installation preferences record. It is replaced
// wholesale, never field-patched inside the store.
type Settings struct {
	// ReminderTime is the preferred time of day for reminders, HH:MM.
	ReminderTime string `json:"defaultReminderTime"`
	// ReminderDays is the default lead time applied to new items.
	ReminderDays int `json:"defaultReminderDays"`
	// Currency is a free-form label used when rendering amounts.
	Currency string `json:"currency"`
}

// DefaultSettings returns the settings used when no state has been persisted.
func DefaultSettings() Settings {
	return Settings{
		ReminderTime: "09:00",
		ReminderDays: 3,
		Currency:     "TWD",
	}
}
