package constants

const (
	AppName           = "glowup"
	DefaultConfigDir  = "~/.config/glowup"
	DefaultConfigPath = "~/.config/glowup/glowup.db"
	DefaultConfigFile = "config.yaml"
	Version           = "v0.3.0"

	// DefaultKeyringUser is the keyring account holding the remote backend connection string.
	DefaultKeyringUser = "storage-connection"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "GLOWUP_"

	// Storage keys of the two logical records in the key-value store.
	KeyUserProfile  = "userProfile"
	KeyDailyRecords = "dailyRecords"

	// RedisKeyPrefix namespaces keys in a shared redis database.
	RedisKeyPrefix = "glowup:"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "glowup-"
	BackupFileSuffix = ".db"

	// Aggregation bounds
	MaxStreakDays     = 365
	MaxWeekPhotos     = 6
	TrendWindowDays   = 7
	InsightWindowDays = 30
)
