package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// DatasetFingerprint identifies the exact input a report was computed from.
// Two runs over byte-identical input carry the same fingerprint, which makes
// the determinism contract auditable after the fact.
type DatasetFingerprint Hash

// NewDatasetFingerprint creates a fingerprint from serialized dataset content
func NewDatasetFingerprint(data []byte) DatasetFingerprint {
	return DatasetFingerprint(NewHash(data))
}

// String returns the string representation
func (f DatasetFingerprint) String() string { return Hash(f).String() }
