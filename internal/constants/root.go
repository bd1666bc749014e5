package constants

const (
	AppName           = "habitkit"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitkit/habitkit.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// StorageVersion identifies the persisted document layout
	StorageVersion = 2

	// Stats window sizes, in calendar days
	StatsWindowDays  = 30
	WeeklyWindowDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitkit-"
)
