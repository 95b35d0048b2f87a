package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soapboxrace/launcher-preflight/internal/config"
	"github.com/soapboxrace/launcher-preflight/internal/download"
	"github.com/soapboxrace/launcher-preflight/internal/elevate"
	"github.com/soapboxrace/launcher-preflight/internal/launchlog"
	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/probe"
	"github.com/soapboxrace/launcher-preflight/internal/prompt"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
	"github.com/soapboxrace/launcher-preflight/internal/remediate"
	"github.com/soapboxrace/launcher-preflight/internal/terminal"
)

var (
	getwd          = os.Getwd
	isTerminal     = terminal.IsInteractive
	detectHost     = redist.DetectHost
	newProbeSource = probe.DefaultSource
	newUI          = prompt.ForTerminal
	openLog        = launchlog.Open
	newRemediator  = defaultRemediator
)

const (
	flagConfig   = "config"
	flagLogFile  = "log-file"
	flagLogLevel = "log-level"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	cmd.PersistentFlags().StringVar(&opts.logFile, flagLogFile, "", messages.RootFlagLogFile)
	cmd.PersistentFlags().StringVar(&opts.logLevel, flagLogLevel, "", messages.RootFlagLogLevel)

	cmd.AddCommand(
		newCheckCmd(opts),
		newStatusCmd(opts),
		newEndpointsCmd(),
	)
	return cmd
}

// runtimeEnv is what check and status need after flags and config are resolved.
type runtimeEnv struct {
	cfg      *config.Config
	log      *logrus.Entry
	host     redist.Host
	closeLog func() error
}

// setup loads config, applies flag overrides, opens the log and detects the host.
func setup(cmd *cobra.Command, opts *rootOptions) (*runtimeEnv, error) {
	path := opts.configPath
	required := path != ""
	if !required {
		cwd, err := getwd()
		if err != nil {
			return nil, err
		}
		path = config.DefaultPath(cwd)
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed(flagLogFile) {
		cfg.Log.Path = opts.logFile
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = opts.logLevel
	}

	log, closeLog, err := openLog(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf(messages.RootLogOpenFailFmt, cfg.Log.Path, err)
	}

	host, err := detectHost()
	if err != nil {
		log.WithError(err).Warn(messages.RootHostDetectLog)
	}
	return &runtimeEnv{cfg: cfg, log: log, host: host, closeLog: closeLog}, nil
}

func defaultRemediator(cfg *config.Config, progress io.Writer) remediate.Remediator {
	return &remediate.Artifacts{
		Fetcher: download.New(download.Options{
			UserAgent: download.UserAgent(cfg.Download.Product, Version),
			MaxBytes:  cfg.Download.MaxBytes,
			Progress:  progress,
		}),
		Runner: elevate.New(),
		Dir:    cfg.Download.Dir,
	}
}

// hostLabel renders a host as e.g. "64-bit windows".
func hostLabel(h redist.Host) string {
	bits := messages.RootHost32Bit
	if h.Is64Bit {
		bits = messages.RootHost64Bit
	}
	return fmt.Sprintf(messages.RootHostLabelFmt, bits, h.OS)
}
