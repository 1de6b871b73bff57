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
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/errkit/code"
)

var (
	// ErrRuleInvalid is returned for rules with an empty name or a nil match.
	ErrRuleInvalid = errors.New("errkit: invalid classification rule")

	// ErrRuleDuplicate is returned when two rules share a name.
	ErrRuleDuplicate = errors.New("errkit: duplicate classification rule")

	// ErrRuleUnknown is returned by WithoutRule for names not in the table.
	ErrRuleUnknown = errors.New("errkit: unknown classification rule")

	// ErrFallbackInvalid is returned when the fallback code is a success.
	ErrFallbackInvalid = errors.New("errkit: fallback code must denote a failure")
)

// Outcome is the result of classifying one value.
type Outcome struct {
	// Code is the resolved error code.
	Code code.Code

	// Text is the failure's own description, without any caller context.
	// It may be empty.
	Text string

	// Rule is the name of the rule that produced the outcome.
	Rule string
}

// MatchFunc inspects v and reports whether it claims it.
// The Rule field of the returned Outcome is filled in by the classifier.
type MatchFunc func(v any) (Outcome, bool)

// Rule is one named entry of the classification table.
type Rule struct {
	Name  string
	Match MatchFunc
}

// Classifier is an immutable, concurrency-safe classification table.
type Classifier interface {
	// Classify resolves v into an Outcome. It never panics and always
	// returns a failed code for a non-nil v.
	Classify(v any) Outcome

	// Explain returns a human-readable description of which rule matched.
	Explain(v any) string

	// Rules lists the rule names in evaluation order, custom rules first.
	Rules() []string
}

// FallbackRule is the Outcome.Rule of values that no rule claimed.
const FallbackRule = "fallback"

const customPrefix = "custom:"

// New constructs an immutable Classifier snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the library fallback.
//  2. Apply user-provided options (custom rules, removals, fallback).
//  3. Validate custom rules and removals against the built-in table.
//  4. Freeze custom rules ahead of the remaining built-in rules.
func New(opts ...Option) (Classifier, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if !b.fallback.Failed() {
		return nil, ErrFallbackInvalid
	}

	defaults := defaultRules()
	seen := make(map[string]bool, len(defaults)+len(b.custom))
	for _, r := range defaults {
		seen[r.Name] = true
	}

	rules := make([]Rule, 0, len(b.custom)+len(defaults))
	for _, r := range b.custom {
		if r.Name == "" || r.Match == nil {
			return nil, fmt.Errorf("classify: rule %q: %w", r.Name, ErrRuleInvalid)
		}
		name := customPrefix + r.Name
		if seen[name] {
			return nil, fmt.Errorf("classify: rule %q: %w", r.Name, ErrRuleDuplicate)
		}
		seen[name] = true
		rules = append(rules, Rule{Name: name, Match: r.Match})
	}

	for _, name := range b.disabled {
		if !slices.ContainsFunc(defaults, func(r Rule) bool { return r.Name == name }) {
			return nil, fmt.Errorf("classify: cannot remove %q: %w", name, ErrRuleUnknown)
		}
	}
	for _, r := range defaults {
		if !slices.Contains(b.disabled, r.Name) {
			rules = append(rules, r)
		}
	}

	return &classifier{rules: rules, fallback: b.fallback}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) Classifier {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the shared classifier with the built-in table.
var Default = sync.OnceValue(func() Classifier { return MustNew() })

// classifier is the frozen rule table.
type classifier struct {
	rules    []Rule
	fallback code.Code
}

// Classify evaluates the rules in order and returns the first claim.
//
// A rule that panics is treated as not matching.
func (c *classifier) Classify(v any) Outcome {
	if out, ok := c.match(v); ok {
		return out
	}
	return Outcome{Code: c.fallback, Text: describe(v), Rule: FallbackRule}
}

func (c *classifier) match(v any) (Outcome, bool) {
	for _, r := range c.rules {
		if out, ok := safeMatch(r, v); ok {
			if !out.Code.Failed() {
				out.Code = c.fallback
			}
			out.Rule = r.Name
			return out, true
		}
	}
	return Outcome{}, false
}

func safeMatch(r Rule, v any) (out Outcome, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = Outcome{}, false
		}
	}()
	return r.Match(v)
}

// Rules lists rule names in evaluation order.
func (c *classifier) Rules() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Name
	}
	return out
}

// Explain produces a textual trace of how v was classified.
//
// Example output:
//
//	value=*fs.PathError "open /nope: no such file or directory"
//	rule:  source=default name="errno"
//	code:  generic:2 "No such file or directory" condition=none
//	text:  "open /nope"
//
// source is one of custom, default or fallback.
func (c *classifier) Explain(v any) string {
	out := c.Classify(v)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "value=%T %q\n", v, describe(v))

	switch {
	case out.Rule == FallbackRule:
		_, _ = fmt.Fprintln(&b, "rule:  source=fallback")
	case strings.HasPrefix(out.Rule, customPrefix):
		_, _ = fmt.Fprintf(&b, "rule:  source=custom name=%q\n", strings.TrimPrefix(out.Rule, customPrefix))
	default:
		_, _ = fmt.Fprintf(&b, "rule:  source=default name=%q\n", out.Rule)
	}

	_, _ = fmt.Fprintf(&b, "code:  %s %q condition=%s\n", out.Code.String(), out.Code.Message(), out.Code.Condition().String())
	_, _ = fmt.Fprintf(&b, "text:  %q\n", out.Text)

	return strings.TrimSuffix(b.String(), "\n")
}

// describe renders v for Explain without ever panicking on a broken
// Error or String method.
func describe(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("<%T>", v)
		}
	}()
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
