package pointsize

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key derives the cache key for a request.
//
// The key is the SHA-256 hex digest of a canonical JSON encoding of the
// ordered tuple (text, font, boxWidth, boxHeight, min, max). Hashing a
// structured encoding makes the key injective over the tuple: no choice of
// field contents (delimiters, numerals, empty strings) can make two
// distinct requests collide, which delimiter-joined keys cannot guarantee.
func Key(r Request) string {
	tuple := []any{r.Text, r.Font, r.BoxWidth, r.BoxHeight, r.MinPointSize, r.MaxPointSize}
	data, _ := json.Marshal(tuple)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
