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

import "fmt"

// ValidateRawRecord validates a RawAssetRecord according to domain rules.
//
// Validation rules:
//   - Product must not be empty
//   - Category must be a known value
//   - Layout and Variant are mutually exclusive
//   - Layout, Variant, and Background must be known values when set
//
// NOT validated:
//   - Filename/BaseRef (a record without a file reference is useless but
//     not malformed; the rendering pipeline owns file existence)
//   - Primary uniqueness (a catalog-level property, checked at load time)
func ValidateRawRecord(record *RawAssetRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Product == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyProduct)
	}

	if err := ValidateCategory(record.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if record.Layout != "" && record.Variant != "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrConflictingAxes)
	}

	if record.Layout != "" {
		if err := ValidateLayout(record.Layout); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}

	if record.Variant != "" {
		if err := ValidateVariant(record.Variant); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}

	if record.Background != "" {
		if err := ValidateBackground(record.Background); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	}

	return nil
}

// ValidateLayout validates that a Layout has a known value.
func ValidateLayout(layout Layout) error {
	switch layout {
	case LayoutHorizontal, LayoutVertical, LayoutSymbol:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidLayout, layout)
}

// ValidateVariant validates that a ColorVariant has a known value.
func ValidateVariant(variant ColorVariant) error {
	switch variant {
	case VariantOneColor, VariantTwoColor, VariantGreen:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
}

// ValidateBackground validates that a BackgroundMode has a known value.
func ValidateBackground(background BackgroundMode) error {
	switch background {
	case BackgroundLight, BackgroundDark:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidBackground, background)
}

// ValidateCategory validates that a Category has a known value.
func ValidateCategory(category Category) error {
	switch category {
	case CategoryProductLogo, CategoryCompanyLogo, CategoryDocument:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
}
