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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/errkit"
	"dirpx.dev/errkit/classify"
	"dirpx.dev/errkit/failure"
)

// scenarios are runtime failures raised by ordinary Go code, keyed by the
// name accepted by the explain command.
var scenarios = map[string]func(text string){
	"divide_by_zero": func(string) {
		zero := 0
		_ = 1 / zero
	},
	"index": func(string) {
		var s []int
		i := 1
		_ = s[i]
	},
	"nil_map": func(string) {
		var m map[string]int
		m["k"] = 1
	},
	"type_assertion": func(string) {
		var v any = "text"
		_ = v.(int)
	},
	"nil": func(string) {
		panic(nil)
	},
	"string": func(text string) {
		panic(text)
	},
	"not_found": func(string) {
		_, err := os.Open(filepath.Join(os.TempDir(), "errkit-explain", "missing"))
		panic(err)
	},
	"parse_int": func(text string) {
		_, err := strconv.Atoi(text)
		panic(err)
	},
	"canceled": func(string) {
		panic(context.Canceled)
	},
	"unavailable": func(text string) {
		panic(status.Error(codes.Unavailable, text))
	},
}

// NewExplainCmd returns the explain subcommand.
func NewExplainCmd(logger *zap.Logger) *cobra.Command {
	var (
		errCtx string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "explain <failure> [text]",
		Short: "Raise a failure and show how it is classified",
		Long: `Raise a failure inside errkit.TryCatch and print the classification
trace followed by the resulting error.

<failure> is either a failure kind name such as "bad_cast" or "overflow_error",
or one of the Go runtime scenarios listed by --list.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				printScenarios(out)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("explain: missing failure name (see --list)")
			}
			text := ""
			if len(args) == 2 {
				text = args[1]
			}
			raise, ok := raiserOf(args[0], text)
			if !ok {
				return fmt.Errorf("explain: unknown failure %q (see --list)", args[0])
			}
			e := explain(out, raise, errCtx)
			logFailure(logger, "explained failure", e)
			return nil
		},
	}

	cmd.Flags().StringVar(&errCtx, "context", "", "Context attached to the resulting error")
	cmd.Flags().BoolVar(&list, "list", false, "List the accepted failure names")

	return cmd
}

func raiserOf(name, text string) (func(), bool) {
	if k, ok := failure.Lookup(name); ok {
		return func() { failure.Raise(k, text) }, true
	}
	if s, ok := scenarios[name]; ok {
		return func() { s(text) }, true
	}
	return nil, false
}

// explain prints the classifier trace for the value raised by raise and the
// errkit.Error TryCatch builds from it.
func explain(w io.Writer, raise func(), errCtx string) errkit.Error {
	_, _ = fmt.Fprintln(w, classify.Default().Explain(capture(raise)))
	e := errkit.TryVoid(raise, errCtx).Err()
	_, _ = fmt.Fprintf(w, "error: %+v\n", e)
	return e
}

// capture returns the value raise panics with.
func capture(raise func()) (v any) {
	defer func() { v = recover() }()
	raise()
	return nil
}

func printScenarios(w io.Writer) {
	_, _ = fmt.Fprintln(w, "failure kinds:")
	for _, k := range failure.Kinds() {
		_, _ = fmt.Fprintf(w, "  %s\n", k)
	}
	_, _ = fmt.Fprintln(w, "runtime scenarios:")
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(w, "  %s\n", name)
	}
}
