// Package hash fingerprints event streams with xxHash64.
package hash

import "github.com/cespare/xxhash/v2"

// Digest accumulates an order-sensitive fingerprint over a sequence of events.
//
// Event bytes are hashed back to back. Every event starts with its own
// length, so the concatenation is unambiguous.
type Digest struct {
	d     *xxhash.Digest
	count uint64
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Add feeds one event's bytes into the digest.
func (d *Digest) Add(event []byte) {
	_, _ = d.d.Write(event)
	d.count++
}

// Count returns the number of events added.
func (d *Digest) Count() uint64 {
	return d.count
}

// Sum64 returns the current fingerprint.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest) Reset() {
	d.d.Reset()
	d.count = 0
}
