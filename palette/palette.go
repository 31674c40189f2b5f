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


package palette

import (
	"fmt"
	"sort"
	"strings"
)

// Shade is one step within a color family.
type Shade struct {
	Shade    string `json:"shade"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Summary describes the palette document at a glance.
type Summary struct {
	TotalProperties int      `json:"total_properties"`
	FamilyCount     int      `json:"family_count"`
	ColorFamilies   []string `json:"color_families"`
}

// Palette is the parsed brand color palette.
type Palette struct {
	Summary  Summary            `json:"summary"`
	Families map[string][]Shade `json:"families"`
}

// Family returns the shades of one color family.
func (p *Palette) Family(name string) ([]Shade, bool) {
	shades, ok := p.Families[strings.ToLower(strings.TrimSpace(name))]
	return shades, ok
}

// FamilyNames returns the sorted family names present in the palette.
func (p *Palette) FamilyNames() []string {
	names := make([]string, 0, len(p.Families))
	for name := range p.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overview returns a one-paragraph description of the palette.
func (p *Palette) Overview() string {
	names := p.FamilyNames()
	if len(names) == 0 {
		return "The palette document holds no color families."
	}
	return fmt.Sprintf("%d color properties across %d families: %s.",
		p.Summary.TotalProperties, len(names), strings.Join(names, ", "))
}
