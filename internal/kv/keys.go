package kv

import "fmt"

// Global keys shared by all users.
const (
	UsersKey   = "users"
	SessionKey = "session_uid"
)

func UserFormsKey(userID string) string {
	return fmt.Sprintf("%s_forms", userID)
}

func UserLeadsKey(userID string) string {
	return fmt.Sprintf("%s_leads", userID)
}

// UserSettingsKey is the legacy pre-multi-form settings record. It is only
// ever read, by the settings-to-forms migration.
func UserSettingsKey(userID string) string {
	return fmt.Sprintf("%s_settings", userID)
}
