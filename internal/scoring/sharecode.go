package scoring

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ShareCodeLen is the number of characters kept from the encoding.
const ShareCodeLen = 8

// ShareCode derives a short display code from the headline metrics.
func ShareCode(key ArchetypeKey, integrity, entropyScore int) string {
	raw := fmt.Sprintf("%s-%d-%d", key, integrity, entropyScore)
	enc := base64.StdEncoding.EncodeToString([]byte(raw))
	if len(enc) > ShareCodeLen {
		enc = enc[:ShareCodeLen]
	}
	return strings.ToUpper(enc)
}
