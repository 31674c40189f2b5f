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


// Package core defines the domain model for brand asset resolution.
//
// The central types are RawAssetRecord, the source-of-truth entry as it
// appears in the asset catalog, and Asset, the canonical per-variant unit
// returned by the engine. A raw record expands into one canonical asset
// per background mode it supports; canonical asset IDs are derived
// deterministically from (brand, variant, background) so they round-trip
// through deep-link parameters.
package core
