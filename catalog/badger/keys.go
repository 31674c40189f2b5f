package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/brandsearch/core"
)

// Key prefixes for different data types
const (
	assetRecordPrefix = "astrec"
)

// makeRecordKey generates a composite key for an asset record.
// Format: prefix:product:id
func makeRecordKey(product string, id core.ID) []byte {
	prefix := fmt.Sprintf("%s:%s:", assetRecordPrefix, product)
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for record ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeProductPrefix generates a partial key covering every record of a product.
func makeProductPrefix(product string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", assetRecordPrefix, product))
}

// makeRecordPrefix generates the prefix covering all asset records.
func makeRecordPrefix() []byte {
	return []byte(assetRecordPrefix + ":")
}

// productFromKey extracts the product slug from a record key.
// The trailing 8 bytes are the binary record ID and may contain
// arbitrary octets, so the product ends at the last separator
// before them.
func productFromKey(key []byte) string {
	prefixLen := len(assetRecordPrefix) + 1
	if len(key) < prefixLen+9 || key[len(key)-9] != ':' {
		return ""
	}
	return string(key[prefixLen : len(key)-9])
}

// recordID derives the stable storage ID for a record from its
// identifying fields. Two records with the same product, file, and
// variant axes map to the same key, so re-ingesting is idempotent.
func recordID(record *core.RawAssetRecord) core.ID {
	content := record.Product + "\x00" + record.Filename + "\x00" + record.VariantKey() + "\x00" + string(record.Background)
	return core.IDFromContent(content)
}
