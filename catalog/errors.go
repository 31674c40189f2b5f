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


package catalog

import "errors"

var (
	// ErrDataSourceUnavailable indicates the catalog source could not be
	// reached at all. Transient: callers may retry with bounded backoff.
	ErrDataSourceUnavailable = errors.New("catalog data source unavailable")

	// ErrProductNotFound indicates a source holds no records for a product.
	// Not a failure: the repository degrades it to zero records.
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrSourceRequired is returned when a catalog source is not provided.
	ErrSourceRequired = errors.New("catalog source required")

	// ErrStoreRequired is returned when a catalog store is not provided.
	ErrStoreRequired = errors.New("catalog store required")

	// ErrStoreClosed indicates the backing store is closed.
	ErrStoreClosed = errors.New("catalog store is closed")

	// ErrSerializationFailed indicates a record could not be encoded or decoded.
	ErrSerializationFailed = errors.New("record serialization failed")

	// ErrInvalidMaxAttempts indicates a retry configuration with no attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
