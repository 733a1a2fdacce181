package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Time Defaults
	DefaultTimePattern   = "yyyy-MM-dd HH:mm:ss"
	DefaultTimeZone      = "Local"
	DefaultTimeLocale    = "en"
	DefaultTimeCacheMode = CacheModeShared

	// App Defaults
	DefaultAPILevel = 0

	// ConfigPathEnv names the environment variable consulted by GetConfigPath.
	ConfigPathEnv = "UTILCODE_CONFIG_PATH"

	maxConfigFileSize = 1 << 20
)

// Formatter cache modes
const (
	CacheModeShared = "shared"
	CacheModeLocal  = "local"
)
