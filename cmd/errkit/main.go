/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/errkit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	debug   = false

	// logLevel is shared by the logger so --debug can raise it after the
	// flags are parsed.
	logLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
)

func main() {
	logger, err := newConsoleLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "errkit",
	Short: "Inspect the errkit failure taxonomy",
	Long: `errkit inspects the failure taxonomy and classification table:
- error codes and their conditions
- how a raised failure is classified
- the boundary flows (panics, errno flags, sentinels, alternatives)`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logLevel.SetLevel(zap.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging of classified failures")
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewCodesCmd(logger))
	rootCmd.AddCommand(cli.NewConditionsCmd(logger))
	rootCmd.AddCommand(cli.NewRulesCmd(logger))
	rootCmd.AddCommand(cli.NewExplainCmd(logger))
	rootCmd.AddCommand(cli.NewDemoCmd(logger))
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// If debug is true, sets log level to Debug so every classified failure is
// logged. Otherwise only errors are shown.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}
	logLevel.SetLevel(level)
	cfg.Level = logLevel
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
