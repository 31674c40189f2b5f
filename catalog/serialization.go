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

import (
	"fmt"

	"github.com/poiesic/brandsearch/core"
)

// MarshalRecord serializes a RawAssetRecord to bytes.
func MarshalRecord(record *core.RawAssetRecord) []byte {
	buf := make([]byte, core.RawAssetRecordMUS.Size(*record))
	core.RawAssetRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRecord deserializes a RawAssetRecord from bytes.
func UnmarshalRecord(data []byte) (*core.RawAssetRecord, error) {
	record, _, err := core.RawAssetRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
