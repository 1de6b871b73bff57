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

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrCategoryInvalid is returned when a category is nil or has an empty name.
	ErrCategoryInvalid = errors.New("errkit: invalid category")

	// ErrCategoryDuplicate is returned when a category name is already taken.
	ErrCategoryDuplicate = errors.New("errkit: duplicate category")
)

// Converter resolves a foreign value into a Code. It reports false when v is
// not something it understands.
type Converter func(v any) (Code, bool)

var registry = struct {
	mu         sync.RWMutex
	categories []Category
	converters []Converter
}{
	categories: []Category{Extra, ConditionCategory, Generic},
}

// RegisterCategory makes cat visible to Categories and LookupCategory.
//
// It is meant to be called from package init. Names must be unique.
func RegisterCategory(cat Category) error {
	if cat == nil || cat.Name() == "" {
		return ErrCategoryInvalid
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, c := range registry.categories {
		if c.Name() == cat.Name() {
			return fmt.Errorf("%w: %q", ErrCategoryDuplicate, cat.Name())
		}
	}
	registry.categories = append(registry.categories, cat)
	return nil
}

// MustRegisterCategory is like RegisterCategory but panics on error.
func MustRegisterCategory(cat Category) {
	if err := RegisterCategory(cat); err != nil {
		panic(err)
	}
}

// RegisterConverter appends conv to the converters consulted by Of.
// Converters run in registration order after the built-in resolutions.
//
// It is meant to be called from package init.
func RegisterConverter(conv Converter) {
	if conv == nil {
		return
	}
	registry.mu.Lock()
	registry.converters = append(registry.converters, conv)
	registry.mu.Unlock()
}

// Categories returns every known category in registration order.
func Categories() []Category {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return slices.Clone(registry.categories)
}

// LookupCategory returns the category registered under name.
func LookupCategory(name string) (Category, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	for _, c := range registry.categories {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func loadConverters() []Converter {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.converters
}
