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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errkit/classify"
)

// NewRulesCmd returns the rules subcommand printing the classification
// order of the default classifier.
func NewRulesCmd(_ *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the classification rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, name := range classify.Default().Rules() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, name)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", classify.FallbackRule)
			return nil
		},
	}
}
