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

package classify

import (
	"regexp/syntax"
	"syscall"

	"dirpx.dev/errkit/code"
)

type regexEntry struct {
	errno syscall.Errno
	text  string
}

// regexTable maps regexp parse-error kinds onto platform codes with a
// detailed description.
var regexTable = map[syntax.ErrorCode]regexEntry{
	syntax.ErrInvalidCharClass:      {syscall.EINVAL, "Regex error: invalid character class"},
	syntax.ErrInvalidCharRange:      {syscall.EINVAL, "Regex error: invalid character range"},
	syntax.ErrInvalidEscape:         {syscall.EINVAL, "Regex error: invalid escaped character"},
	syntax.ErrInvalidNamedCapture:   {syscall.EINVAL, "Regex error: invalid named capture"},
	syntax.ErrInvalidPerlOp:         {syscall.EINVAL, "Regex error: invalid or unsupported Perl syntax"},
	syntax.ErrInvalidRepeatOp:       {syscall.EINVAL, "Regex error: invalid nested repetition operator"},
	syntax.ErrInvalidRepeatSize:     {syscall.EINVAL, "Regex error: invalid range in braces ('{' and '}')"},
	syntax.ErrInvalidUTF8:           {syscall.EINVAL, "Regex error: invalid UTF-8"},
	syntax.ErrMissingBracket:        {syscall.EINVAL, "Regex error: mismatched square brackets ('[' and ']')"},
	syntax.ErrMissingParen:          {syscall.EINVAL, "Regex error: mismatched parentheses ('(' and ')')"},
	syntax.ErrUnexpectedParen:       {syscall.EINVAL, "Regex error: mismatched parentheses ('(' and ')')"},
	syntax.ErrMissingRepeatArgument: {syscall.EINVAL, "Regex error: one of *?+{ was not preceded by a valid regular expression"},
	syntax.ErrTrailingBackslash:     {syscall.EINVAL, "Regex error: trailing backslash"},
	syntax.ErrLarge:                 {syscall.ENOMEM, "Regex error: insufficient memory to compile the expression"},
	syntax.ErrNestingDepth:          {syscall.ERANGE, "Regex error: expression nests too deeply"},
}

const regexUnknown = "Regex error: unknown error"

// Regex maps a regexp parse-error kind to a code and a detailed message.
// Kinds with no entry (including syntax.ErrInternalError) report
// code.UnknownError and "Regex error: unknown error".
func Regex(ec syntax.ErrorCode) (code.Code, string) {
	if e, ok := regexTable[ec]; ok {
		return code.Errno(e.errno), e.text
	}
	return code.UnknownError.Code(), regexUnknown
}

// regexOutcome renders a regex failure, appending the expression if known.
func regexOutcome(ec syntax.ErrorCode, expr string) Outcome {
	c, text := Regex(ec)
	if expr != "" {
		text += " in `" + expr + "`"
	}
	return Outcome{Code: c, Text: text}
}
