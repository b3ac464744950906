// Package cmd implements the dropwidgets command line.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/dropwidgets/internal/app"
	"github.com/llehouerou/dropwidgets/internal/config"
	"github.com/llehouerou/dropwidgets/internal/errmsg"
	"github.com/llehouerou/dropwidgets/internal/logging"
	"github.com/llehouerou/dropwidgets/internal/state"
)

var (
	version    string
	configPath string
	logFile    string
	dropUp     bool
	duration   time.Duration
	noHistory  bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropwidgets",
	Short: "Animated combobox and multiselect widgets for the terminal",
	Long: `dropwidgets - A demo of dropdown widgets whose option tray slides open and closed.

Recently picked fruits are listed first and the selected tags are restored on the next run.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: XDG config home, then ./config.toml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.Flags().BoolVar(&dropUp, "drop-up", false, "open the trays above the fields")
	rootCmd.Flags().DurationVar(&duration, "duration", 0, "tray slide duration (e.g. 300ms)")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not read or write the selection history")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.New(errmsg.Format(configOp(err), err))
	}

	path := cfg.Log.File
	if logFile != "" {
		path = logFile
	}
	logger, logCloser, err := logging.Setup(path, cfg.LogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logCloser.Close()
	logger.Info("starting", "version", version)

	stateMgr, err := openHistory(cfg, logger)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpHistoryOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close history", "err", err)
		}
	}()

	opts := app.Options{Duration: duration}
	if cmd.Flags().Changed("drop-up") {
		opts.DropUp = &dropUp
	}
	model, err := app.New(cfg, stateMgr, logger, opts)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Load()
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}
	return config.LoadFrom(configPath)
}

// configOp tells a file that does not decode apart from one that cannot be
// read.
func configOp(err error) errmsg.Op {
	if errors.Is(err, config.ErrParse) {
		return errmsg.OpConfigParse
	}
	return errmsg.OpConfigLoad
}

func openHistory(cfg *config.Config, logger *slog.Logger) (state.Interface, error) {
	hc := cfg.GetHistoryConfig()
	if noHistory || !*hc.Enabled {
		return nopHistory{}, nil
	}
	return state.Open(
		state.WithDebounce(time.Duration(hc.DebounceMS)*time.Millisecond),
		state.WithLogger(logger),
	)
}

// nopHistory stands in for the store when the history is disabled.
type nopHistory struct{}

func (nopHistory) RecordSelection(string, string, string)        {}
func (nopHistory) Flush() error                                  { return nil }
func (nopHistory) Recent(string, int) ([]state.Selection, error) { return nil, nil }
func (nopHistory) SaveValues(string, []string) error             { return nil }
func (nopHistory) GetValues(string) ([]string, error)            { return nil, nil }
func (nopHistory) Close() error                                  { return nil }

var _ state.Interface = nopHistory{}
