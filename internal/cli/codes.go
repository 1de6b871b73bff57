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
	"fmt"
	"io"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"

	"dirpx.dev/errkit/code"
	"dirpx.dev/errkit/grpcx"
)

type codeEntry struct {
	value int
	name  string
}

// NewCodesCmd returns the codes subcommand listing the codes of a category.
func NewCodesCmd(logger *zap.Logger) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "codes [name...]",
		Short: "List the error codes of a category",
		Long: `List every code of a category with its value, name, condition and
message. Names given as arguments restrict the listing; for the ExtraError
category they are matched like code.ParseKind ("bad-cast" == "BadCast").`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := listCodes(cmd.OutOrStdout(), category, args); err != nil {
				logger.Error("list codes", zap.String("category", category), zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", code.Extra.Name(), "Category to list (ExtraError, ExtraErrorCondition, generic, grpc)")

	return cmd
}

func listCodes(w io.Writer, category string, names []string) error {
	cat, ok := code.LookupCategory(category)
	if !ok {
		return fmt.Errorf("unknown category %q", category)
	}
	entries, err := filterEntries(cat, entriesOf(cat), names)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "VALUE\tNAME\tCONDITION\tMESSAGE")
	for _, e := range entries {
		c := code.Make(e.value, cat)
		cond := c.Condition().String()
		if cat == code.ConditionCategory {
			cond = "-"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.value, e.name, cond, cat.Message(e.value))
	}
	return tw.Flush()
}

// entriesOf enumerates the known values of cat.
func entriesOf(cat code.Category) []codeEntry {
	var out []codeEntry
	switch cat {
	case code.Extra:
		for _, k := range code.Kinds() {
			out = append(out, codeEntry{int(k), k.String()})
		}
	case code.ConditionCategory:
		for _, c := range code.Conditions() {
			out = append(out, codeEntry{int(c), c.String()})
		}
	case code.Generic:
		for v := 1; v < 256; v++ {
			if name := code.ErrnoName(syscall.Errno(v)); name != "" {
				out = append(out, codeEntry{v, name})
			}
		}
	case grpcx.Category:
		for c := codes.Canceled; c <= codes.Unauthenticated; c++ {
			out = append(out, codeEntry{int(c), c.String()})
		}
	}
	return out
}

func filterEntries(cat code.Category, entries []codeEntry, names []string) ([]codeEntry, error) {
	if len(names) == 0 {
		return entries, nil
	}
	var out []codeEntry
	for _, name := range names {
		if cat == code.Extra {
			k, err := code.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", name, err)
			}
			out = append(out, codeEntry{int(k), k.String()})
			continue
		}
		found := false
		for _, e := range entries {
			if strings.EqualFold(e.name, strings.TrimSpace(name)) {
				out = append(out, e)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no code named %q in category %s", name, cat.Name())
		}
	}
	return out, nil
}
