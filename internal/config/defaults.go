package config

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// LogStderr as logging.file sends logs to the console.
const LogStderr = "stderr"

const (
	defaultConfigPath = "~/.config/recipebox/config.toml"
	defaultBackend    = BackendJSON
	defaultDataDir    = "~/.local/share/recipebox"
	defaultKey        = "recipes"
	defaultMaxBytes   = 5 * 1024 * 1024
	defaultLogLevel   = "info"
	defaultLogFile    = "~/.local/share/recipebox/recipebox.log"
)

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend:  defaultBackend,
			DataDir:  defaultDataDir,
			Key:      defaultKey,
			MaxBytes: defaultMaxBytes,
		},
		UI: UI{
			Mouse: true,
		},
		Logging: Logging{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}
