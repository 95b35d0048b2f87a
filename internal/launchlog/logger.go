// Package launchlog opens the structured JSON log shared by one preflight run.
package launchlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// RunIDField is the log field carrying the per-run identifier.
const RunIDField = "run_id"

var (
	osMkdirAll = os.MkdirAll
	osOpenFile = os.OpenFile
	newUUID    = uuid.NewRandom
)

// Open returns an entry that appends JSON records at level to path,
// tagged with a fresh run id. An empty path discards all output.
// The returned close function releases the file.
func Open(path string, level string) (*logrus.Entry, func() error, error) {
	lvl := logrus.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf(messages.LaunchlogParseLevelFmt, level, err)
		}
		lvl = parsed
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	closeFn := func() error { return nil }
	if strings.TrimSpace(path) == "" {
		logger.SetOutput(io.Discard)
	} else {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := osMkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf(messages.LaunchlogCreateDirFmt, path, err)
			}
		}
		f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf(messages.LaunchlogOpenFileFmt, path, err)
		}
		logger.SetOutput(f)
		closeFn = f.Close
	}

	return logger.WithField(RunIDField, runID()), closeFn, nil
}

func runID() string {
	id, err := newUUID()
	if err != nil {
		return fmt.Sprintf("run-%d", time.Now().UTC().UnixNano())
	}
	return "run-" + id.String()
}
