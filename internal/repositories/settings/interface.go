package settings

import "context"

// Keys backing the journal credential state and the profile. Values are
// strings; callers parse and format.
const (
	KeyTheme                = "theme"
	KeyPomodoroDuration     = "pomodoro_duration"
	KeyShortBreak           = "short_break"
	KeyLongBreak            = "long_break"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyUserName             = "user_name"
	KeyDisplayHandle        = "display_handle"
	KeyUserEmail            = "user_email"
	KeyMemberSince          = "member_since"
	KeyProfileLastUpdated   = "profile_last_updated"

	KeyJournalPasswordHash    = "journal_password_hash"
	KeyJournalPasswordEnabled = "journal_password_enabled"
	KeyJournalLockoutTime     = "journal_lockout_time"
)

// Repository is the persisted key-value configuration store.
type Repository interface {
	// Get returns the value for key, or def when the key is absent.
	Get(ctx context.Context, key, def string) (string, error)

	// Set upserts the value for key and refreshes its updated_at stamp.
	Set(ctx context.Context, key, value string) error

	// All returns every stored key-value pair.
	All(ctx context.Context) (map[string]string, error)
}
