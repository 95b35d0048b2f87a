package config

import "github.com/soapboxrace/launcher-preflight/internal/download"

// FileName is the optional config file looked up in the launcher directory.
const FileName = "preflight.toml"

// Default values applied before the config file is decoded.
const (
	DefaultDownloadDir = "."
	DefaultProduct     = "GameLauncher"
	DefaultLogPath     = "preflight.log"
	DefaultLogLevel    = "info"
)

// Config is the preflight configuration file.
type Config struct {
	Prompt   PromptConfig   `toml:"prompt"`
	Download DownloadConfig `toml:"download"`
	Log      LogConfig      `toml:"log"`
}

// PromptConfig controls consent prompts.
type PromptConfig struct {
	// AssumeYes accepts every install prompt without asking.
	AssumeYes bool `toml:"assume_yes"`
}

// DownloadConfig controls where and how installers are fetched.
type DownloadConfig struct {
	Dir      string `toml:"dir"`
	MaxBytes int64  `toml:"max_bytes"`
	// Product is the first token of the User-Agent header.
	Product string `toml:"product"`
}

// LogConfig controls the structured log file. An empty path disables it.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Download: DownloadConfig{
			Dir:      DefaultDownloadDir,
			MaxBytes: download.DefaultMaxBytes,
			Product:  DefaultProduct,
		},
		Log: LogConfig{
			Path:  DefaultLogPath,
			Level: DefaultLogLevel,
		},
	}
}
