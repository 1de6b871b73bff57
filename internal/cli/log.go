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

// Package cli implements the errkit inspection commands.
package cli

import (
	"go.uber.org/zap"

	"dirpx.dev/errkit"
)

// logFailure records a classified failure with structured fields. Failures
// are expected output of these commands, so they are logged at debug level.
func logFailure(logger *zap.Logger, msg string, e errkit.Error) {
	if !e.Failed() {
		return
	}
	logger.Debug(msg,
		zap.String("code", e.Code().String()),
		zap.String("category", e.Category().Name()),
		zap.Stringer("condition", e.Condition()),
		zap.String("context", e.Context()),
	)
}
