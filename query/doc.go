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


// Package query analyzes free-text asset queries.
//
// It provides three pure, stateless facilities:
//   - Registry: an immutable table mapping product identifiers to alias
//     strings, validated once at construction
//   - ResolveProducts: longest-alias-wins product resolution with ties
//     preserved rather than arbitrated
//   - Classifier: an ordered intent cascade plus keyword parameter
//     extraction (layout, background, color variant, file type)
//
// Nothing in this package performs I/O or holds mutable state, so a single
// Registry and Classifier are safe for unsynchronized concurrent use.
package query
