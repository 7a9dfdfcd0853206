// Package interning deduplicates the strings the term/collection builder
// mints repeatedly while materializing a large document: IRIs referenced
// many times, blank-node labels reused across statements. Keys are
// 128-bit xxh3 hashes of the string bytes, the same hashing strategy the
// teacher's quad-store encoder used for term keys, repurposed here for a
// parse-scoped string table instead of a persistent quad index.
package interning

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Key is a 128-bit digest of an interned string.
type Key [16]byte

// HashKey computes the interning key for s.
func HashKey(s string) Key {
	h := xxh3.Hash128([]byte(s))
	var k Key
	binary.BigEndian.PutUint64(k[0:8], h.Hi)
	binary.BigEndian.PutUint64(k[8:16], h.Lo)
	return k
}

// Interner maps strings to a canonical, deduplicated copy. Intern returns the
// canonical string for s, interning it on first sight.
type Interner interface {
	Intern(s string) string
	Close() error
}

// MemInterner is the default in-memory Interner: a map keyed by the 128-bit
// hash, so repeated long IRIs are stored once regardless of how many times
// they're referenced across a document.
type MemInterner struct {
	table map[Key]string
}

// NewMemInterner constructs an empty in-memory interner.
func NewMemInterner() *MemInterner {
	return &MemInterner{table: make(map[Key]string)}
}

func (m *MemInterner) Intern(s string) string {
	k := HashKey(s)
	if existing, ok := m.table[k]; ok {
		return existing
	}
	m.table[k] = s
	return s
}

func (m *MemInterner) Close() error { return nil }
