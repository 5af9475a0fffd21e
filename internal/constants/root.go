package constants

const (
	AppName = "trainlog"
	Version = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultDataDir holds the local caches, logs and the fallback SQLite
	// store, which lives at <data dir>/<app name>.db.
	DefaultDataDir = "~/.config/trainlog"

	// Keyring accounts
	KeyringUserRemote = "database-connection"
	KeyringUserAPIKey = "generator-api-key"

	// Blob keys for the local persisted cache
	BlobKeySchedule    = "schedule"
	BlobKeyLastWorkout = "last-workout"
	BlobKeyProfile     = "profile"

	// DefaultOwner is used when no owner is configured; every entry still
	// carries an explicit owner id.
	DefaultOwner = "local"

	// Plan generator defaults
	DefaultGeneratorURL   = "https://api.openai.com/v1/chat/completions"
	DefaultGeneratorModel = "gpt-4o-mini"
)
