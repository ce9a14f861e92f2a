package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/nextday/internal/config"
	"github.com/hammamikhairi/nextday/internal/logger"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 reply cannot leak into text inputs.
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"

	cfgFile string
	envFile string
	logFile string
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:           "nextday",
	Short:         "Sign up for NextDay meal delivery from the terminal",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "YAML config file")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	pf.StringVar(&logFile, "log-file", ".nextday-logs/nextday.log", `file to write logs to (use "stderr" to log to console)`)
	pf.BoolVar(&verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&quiet, "quiet", false, "disable all logging")

	rootCmd.AddCommand(registerCmd, calcCmd, mealCmd, sessionsCmd)
}

// setup loads the configuration and opens the logger. The returned func
// flushes and closes the log output.
func setup() (*config.Config, *logger.Logger, func(), error) {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return nil, nil, nil, err
	}

	level := logger.LevelNormal
	if verbose {
		level = logger.LevelVerbose
	}
	if quiet {
		level = logger.LevelOff
	}

	// Logs go to a file by default so the terminal UI stays clean.
	var out io.Writer = os.Stderr
	closeOut := func() {}
	if logFile != "" && logFile != "stderr" {
		if dir := filepath.Dir(logFile); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", logFile, err)
		} else {
			out = f
			closeOut = func() { f.Close() }
		}
	}

	log := logger.New(level, out)
	return cfg, log, func() {
		_ = log.Sync()
		closeOut()
	}, nil
}
