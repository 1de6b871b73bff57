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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dirpx.dev/errkit/code"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCodes_DefaultCategory(t *testing.T) {
	out, err := run(t, NewCodesCmd(zap.NewNop()))
	require.NoError(t, err)
	require.Contains(t, out, "VALUE")
	for _, k := range code.Kinds() {
		require.Contains(t, out, k.Message())
	}
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(code.Kinds())+1)
}

func TestCodes_FilterByKind(t *testing.T) {
	out, err := run(t, NewCodesCmd(zap.NewNop()), "bad-cast", "length_error")
	require.NoError(t, err)
	require.Contains(t, out, "BadCast")
	require.Contains(t, out, "Bad cast exception")
	require.Contains(t, out, "resource")
	require.Contains(t, out, "LengthError")
	require.NotContains(t, out, "InvalidArgument")
}

func TestCodes_UnknownKind(t *testing.T) {
	_, err := run(t, NewCodesCmd(zap.NewNop()), "not-a-kind")
	require.ErrorIs(t, err, code.ErrKindInvalid)
}

func TestCodes_OtherCategories(t *testing.T) {
	out, err := run(t, NewCodesCmd(zap.NewNop()), "--category", "grpc", "unavailable")
	require.NoError(t, err)
	require.Contains(t, out, "Unavailable")
	require.NotContains(t, out, "NotFound")

	out, err = run(t, NewCodesCmd(zap.NewNop()), "--category", "ExtraErrorCondition")
	require.NoError(t, err)
	require.Contains(t, out, "Logic error")
	require.Contains(t, out, "Other error")

	_, err = run(t, NewCodesCmd(zap.NewNop()), "--category", "nope")
	require.ErrorContains(t, err, `unknown category "nope"`)

	_, err = run(t, NewCodesCmd(zap.NewNop()), "--category", "grpc", "Teapot")
	require.ErrorContains(t, err, `no code named "Teapot"`)
}

func TestConditions(t *testing.T) {
	out, err := run(t, NewConditionsCmd(zap.NewNop()))
	require.NoError(t, err)
	require.Contains(t, out, "InvalidArgument, LengthError, LogicError")
	require.Contains(t, out, "BadException, Exception, UnknownException, UnknownError")
}

func TestConditions_NamesAreShort(t *testing.T) {
	out, err := run(t, NewConditionsCmd(zap.NewNop()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(code.Conditions())+1)
	require.Equal(t, []string{"1", "logic", "Logic"}, strings.Fields(lines[1])[:3])
	require.Equal(t, []string{"5", "other", "Other"}, strings.Fields(lines[5])[:3])
}

func TestRules(t *testing.T) {
	out, err := run(t, NewRulesCmd(zap.NewNop()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, " 1  passthrough", lines[0])
	require.Equal(t, "fallback", strings.TrimSpace(lines[len(lines)-1]))
	require.Contains(t, out, "grpc_status")
}

func TestExplain_FailureKind(t *testing.T) {
	out, err := run(t, NewExplainCmd(zap.NewNop()), "bad_cast", "widget", "--context", "load")
	require.NoError(t, err)
	require.Contains(t, out, `rule:  source=default name="bad_cast"`)
	require.Contains(t, out, "code:  ExtraError:9")
	require.Contains(t, out, "(error_code: 9 (ExtraError category))")
	require.Contains(t, out, "load")
}

func TestExplain_RuntimeScenario(t *testing.T) {
	out, err := run(t, NewExplainCmd(zap.NewNop()), "divide_by_zero")
	require.NoError(t, err)
	require.Contains(t, out, `name="divide_by_zero"`)
	require.Contains(t, out, "generic category")

	out, err = run(t, NewExplainCmd(zap.NewNop()), "unavailable", "shard down")
	require.NoError(t, err)
	require.Contains(t, out, `name="grpc_status"`)
	require.Contains(t, out, "grpc category")
}

func TestExplain_ListAndErrors(t *testing.T) {
	out, err := run(t, NewExplainCmd(zap.NewNop()), "--list")
	require.NoError(t, err)
	require.Contains(t, out, "bad_cast")
	require.Contains(t, out, "nil_map")

	_, err = run(t, NewExplainCmd(zap.NewNop()), "no_such_failure")
	require.ErrorContains(t, err, `unknown failure "no_such_failure"`)

	_, err = run(t, NewExplainCmd(zap.NewNop()))
	require.ErrorContains(t, err, "missing failure name")
}

func TestDemo_Parse(t *testing.T) {
	out, err := run(t, NewDemoCmd(zap.NewNop()), "--dir", t.TempDir(), "parse")
	require.NoError(t, err)
	require.Contains(t, out, "== parse")
	require.Contains(t, out, "ok: 42")
	require.Contains(t, out, `parse "4x2"`)
	require.Contains(t, out, `parse "99999999999999999999"`)
}

func TestDemo_Config(t *testing.T) {
	t.Setenv(ConfigEnv, "from-env")
	out, err := run(t, NewDemoCmd(zap.NewNop()), "--dir", t.TempDir(), "config")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "ok: from-env"))
}

func TestDemo_ConfigFile(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	require.NoError(t, os.Unsetenv(ConfigEnv))

	dir := t.TempDir()
	out, err := run(t, NewDemoCmd(zap.NewNop()), "--dir", dir, "config")
	require.NoError(t, err)
	require.Contains(t, out, "env "+ConfigEnv)
	require.Contains(t, out, "ok: defaults")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "errkit.yaml"), []byte("name: from-file\n"), 0o600))
	out, err = run(t, NewDemoCmd(zap.NewNop()), "--dir", dir, "config")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "ok: from-file"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "errkit.yaml"), []byte("other: 1\n"), 0o600))
	out, err = run(t, NewDemoCmd(zap.NewNop()), "--dir", dir, "config")
	require.NoError(t, err)
	require.Contains(t, out, "name is empty")
}

func TestDemo_RPC(t *testing.T) {
	out, err := run(t, NewDemoCmd(zap.NewNop()), "--dir", t.TempDir(), "rpc")
	require.NoError(t, err)
	require.Contains(t, out, "resp=25 code=OK")
	require.Contains(t, out, "code=OutOfRange")
	require.Contains(t, out, "/errkit.Demo/Divide")
}

func TestDemo_InvalidFlow(t *testing.T) {
	_, err := run(t, NewDemoCmd(zap.NewNop()), "--dir", t.TempDir(), "teleport")
	require.Error(t, err)
}
