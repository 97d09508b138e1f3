package server

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateViewerID creates a unique viewer ID.
func GenerateViewerID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
