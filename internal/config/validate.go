package config

import (
	"fmt"
	"strings"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Download.Dir) == "" {
		return fmt.Errorf(messages.ConfigDownloadDirRequiredFmt, source)
	}
	if c.Download.MaxBytes <= 0 {
		return fmt.Errorf(messages.ConfigDownloadMaxBytesFmt, source)
	}
	if strings.TrimSpace(c.Download.Product) == "" {
		return fmt.Errorf(messages.ConfigDownloadProductFmt, source)
	}
	if _, ok := validLogLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, source, c.Log.Level)
	}
	return nil
}
