package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const (
	// DefaultByteLength is the entropy of a generated token in bytes.
	DefaultByteLength = 32
)

// Generate returns a cryptographically random opaque token of byteLength
// random bytes, base64url-encoded without padding so it is safe to embed in a
// URL path. Non-positive byteLength falls back to DefaultByteLength.
// A failure of the system randomness source is unrecoverable and panics.
func Generate(byteLength int) string {
	if byteLength <= 0 {
		byteLength = DefaultByteLength
	}
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		panic("token: system randomness unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

// HashSHA256Hex returns the lowercase hex SHA-256 digest of the token. The
// digest is what the ledger stores; it is used only for equality comparison
// and is never reversed.
func HashSHA256Hex(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
