// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package query

import "errors"

var (
	// ErrMalformedRegistry indicates the pattern registry failed validation.
	// This is a startup-time configuration error; the process must not
	// serve queries against a corrupt alias table.
	ErrMalformedRegistry = errors.New("malformed pattern registry")

	// ErrEmptyProductID indicates a pattern with an empty product identifier.
	ErrEmptyProductID = errors.New("empty product identifier")

	// ErrEmptyAlias indicates a pattern with an empty alias string.
	ErrEmptyAlias = errors.New("empty alias")

	// ErrDuplicateAlias indicates the same alias declared twice for one product.
	// Aliases may repeat across products (ambiguity is preserved), but a
	// within-product duplicate is a configuration mistake.
	ErrDuplicateAlias = errors.New("duplicate alias for product")

	// ErrDuplicateProduct indicates the same product declared twice.
	ErrDuplicateProduct = errors.New("duplicate product in registry")

	// ErrRegistryRequired is returned when a registry is not provided.
	ErrRegistryRequired = errors.New("pattern registry required")
)
