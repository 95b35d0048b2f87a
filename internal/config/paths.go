package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

var expandHome = homedir.Expand

// DefaultPath returns the config file location inside dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// expandPaths resolves a leading ~ in the download dir and log path.
func (c *Config) expandPaths(source string) error {
	dir, err := expandHome(c.Download.Dir)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, source, c.Download.Dir, err)
	}
	logPath, err := expandHome(c.Log.Path)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, source, c.Log.Path, err)
	}
	c.Download.Dir = dir
	c.Log.Path = logPath
	return nil
}
