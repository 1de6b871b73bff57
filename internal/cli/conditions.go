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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errkit/code"
)

// NewConditionsCmd returns the conditions subcommand.
func NewConditionsCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "conditions",
		Short: "List error conditions and the kinds they group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := listConditions(cmd.OutOrStdout()); err != nil {
				logger.Error("list conditions", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

func listConditions(w io.Writer) error {
	members := make(map[code.Condition][]string)
	for _, k := range code.Kinds() {
		members[k.Condition()] = append(members[k.Condition()], k.String())
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "VALUE\tNAME\tMESSAGE\tKINDS")
	for _, c := range code.Conditions() {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", int(c), c.String(), c.Message(), strings.Join(members[c], ", "))
	}
	return tw.Flush()
}
