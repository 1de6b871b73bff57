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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestRootCommandHelp(t *testing.T) {
	logger, err := newConsoleLogger(false)
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	initCommands(logger)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "errkit inspects the failure taxonomy")
	for _, sub := range []string{"codes", "conditions", "rules", "explain", "demo"} {
		require.Contains(t, out.String(), sub)
	}
}

func TestNewConsoleLogger_Debug(t *testing.T) {
	logger, err := newConsoleLogger(true)
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel), "debug level must be enabled")

	logger, err = newConsoleLogger(false)
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel), "info level must be disabled")
}
