package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is used for createdAt/updatedAt fields.
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

	// DefaultTimezone is the home timezone every day boundary is computed in.
	DefaultTimezone = "Asia/Seoul"
)
