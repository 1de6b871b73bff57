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

package code

import "strconv"

// Condition is a coarse error family used for "is this kind of failure"
// checks across categories.
//
// A Condition is not a Code: matching an errkit.Error against a Condition
// compares the error's default condition, never its numeric value.
type Condition int

const (
	// NoCondition is the condition of success and of codes that do not take
	// part in the condition taxonomy (for example platform errno codes).
	NoCondition Condition = 0

	// ConditionLogic groups failures caused by a violated precondition.
	ConditionLogic Condition = 1

	// ConditionRuntime groups failures detectable only while running.
	ConditionRuntime Condition = 2

	// ConditionResource groups allocation and type-system failures.
	ConditionResource Condition = 3

	// ConditionAccess groups failures of reading an absent or wrong value.
	ConditionAccess Condition = 4

	// ConditionOther groups everything else.
	ConditionOther Condition = 5
)

var conditionTable = [...]struct {
	name    string
	message string
}{
	ConditionLogic:    {"logic", "Logic error"},
	ConditionRuntime:  {"runtime", "Runtime error"},
	ConditionResource: {"resource", "Resource error"},
	ConditionAccess:   {"access", "Access error"},
	ConditionOther:    {"other", "Other error"},
}

const unrecognizedCondition = "Unrecognized error condition"

// Conditions returns every defined Condition in ascending value order.
func Conditions() []Condition {
	return []Condition{ConditionLogic, ConditionRuntime, ConditionResource, ConditionAccess, ConditionOther}
}

// Valid reports whether c is one of the defined conditions.
func (c Condition) Valid() bool {
	return c > NoCondition && int(c) < len(conditionTable)
}

// Message returns the registry message, or "Unrecognized error condition".
func (c Condition) Message() string {
	if !c.Valid() {
		return unrecognizedCondition
	}
	return conditionTable[c].message
}

// Error implements the error interface.
func (c Condition) Error() string { return c.Message() }

// String returns the short name of c ("logic", "runtime", ...).
func (c Condition) String() string {
	if c == NoCondition {
		return "none"
	}
	if !c.Valid() {
		return "Condition(" + strconv.Itoa(int(c)) + ")"
	}
	return conditionTable[c].name
}

// conditionCategory describes the Condition value space.
type conditionCategory struct{}

// ConditionCategory is the "ExtraErrorCondition" category.
var ConditionCategory Category = conditionCategory{}

func (conditionCategory) Name() string                     { return "ExtraErrorCondition" }
func (conditionCategory) Message(v int) string             { return Condition(v).Message() }
func (conditionCategory) DefaultCondition(v int) Condition { return Condition(v) }
