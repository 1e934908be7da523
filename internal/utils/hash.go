package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateHash returns the hex SHA-256 of body concatenated with key.
// Used for request/response body integrity between client and server.
func CalculateHash(body []byte, key string) string {
	h := sha256.New()
	h.Write(body)
	h.Write([]byte(key))
	return hex.EncodeToString(h.Sum(nil))
}
