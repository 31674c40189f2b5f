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


// Package catalog provides access to the brand asset catalog.
//
// This is the only part of the engine that performs I/O. The Source
// interface abstracts where raw asset records come from (a local
// inventory file, a remote inventory URL, a BadgerDB store); Repository
// adds the fetch-and-merge policy on top: per-product fetches run
// concurrently, are retried with bounded backoff, and degrade to zero
// records for a product that keeps failing, so one broken product never
// aborts the whole request.
//
// Store is the persistence interface backing the cache layer. Caches are
// keyed by product identifier and invalidated wholesale (ReplaceAll),
// never mutated in place.
package catalog
