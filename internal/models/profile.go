package models

// Profile is the typed view over the profile-related settings keys.
type Profile struct {
	Name          string
	Handle        string
	Email         string
	MemberSince   string
	LastUpdated   string
	Theme         string
}

// PomodoroSettings is the typed view over the timer-related settings keys.
// All values are minutes.
type PomodoroSettings struct {
	Duration   int
	ShortBreak int
	LongBreak  int
}
