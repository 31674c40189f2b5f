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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a RawAssetRecord failed validation.
	ErrInvalidRecord = errors.New("invalid asset record")

	// ErrEmptyProduct indicates the Product field is empty.
	ErrEmptyProduct = errors.New("product cannot be empty")

	// ErrInvalidLayout indicates an unknown Layout value.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidVariant indicates an unknown ColorVariant value.
	ErrInvalidVariant = errors.New("invalid color variant")

	// ErrInvalidBackground indicates an unknown BackgroundMode value.
	ErrInvalidBackground = errors.New("invalid background mode")

	// ErrInvalidCategory indicates an unknown Category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrConflictingAxes indicates a record declares both a layout and a color variant.
	ErrConflictingAxes = errors.New("record cannot declare both layout and color variant")

	// ErrInvalidAssetID indicates an asset ID that does not parse back
	// into a (brand, variant, background) tuple.
	ErrInvalidAssetID = errors.New("invalid asset id")
)
