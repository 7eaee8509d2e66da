// Package audit computes a content digest over decoded payload bytes,
// the way mebo's internal/hash package hashes metric names for O(1)
// lookup — repurposed here to let a caller compare two decodes of the
// same object for silent divergence without re-parsing.
package audit

import "github.com/cespare/xxhash/v2"

// Digest returns the xxHash64 of raw, the decoded value's payload
// bytes as they appeared on the wire.
func Digest(raw []byte) uint64 {
	return xxhash.Sum64(raw)
}
