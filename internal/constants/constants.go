package constants

const (
	AppName            = "fieldagenda"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/fieldagenda/fieldagenda.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MonthCellEventCap is the maximum number of events a month cell renders
	// directly; the rest collapse into a "+N more" count.
	MonthCellEventCap = 4

	HoursPerDay = 24
	DaysPerWeek = 7

	// DefaultWeekStart is Sunday (0) unless overridden in settings.
	DefaultWeekStart = 0

	// MaxOccurrencesPerRule caps recurrence expansion for rules without an
	// explicit end, so an open-ended weekly rule cannot flood the store.
	MaxOccurrencesPerRule = 366
)
