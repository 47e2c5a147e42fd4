// Package transcript implements a label-addressed Fiat-Shamir transcript.
//
// A Transcript accumulates protocol messages and derives pseudorandom
// challenges that are a deterministic function of every message appended so
// far, in order. A prover and a verifier that perform the same sequence of
// labeled appends derive identical challenges; any divergence in content,
// labels or ordering makes the challenges diverge.
//
// A Transcript is owned by a single proving or verifying session. It is not
// safe for concurrent use and must not be reused once the session ends.
package transcript

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// domain separation tags for the three state transitions
const (
	tagInit      = 0x00
	tagAppend    = 0x01
	tagChallenge = 0x02
)

// Transcript is an append-only accumulator with a chained hash state.
type Transcript struct {
	h     hash.Hash
	state []byte
}

// New returns a transcript seeded with the given session label, using
// BLAKE2b-256 as the underlying hash.
func New(label string) *Transcript {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only reachable with a key, which we never pass
		panic(err)
	}
	return NewWithHash(label, h)
}

// NewWithHash returns a transcript seeded with the given session label,
// deriving challenges with h. Both sides of a protocol must agree on h.
func NewWithHash(label string, h hash.Hash) *Transcript {
	t := &Transcript{h: h}
	t.ratchet(tagInit, label, nil)
	return t
}

// Append binds data to the transcript under the given label. The label and
// the byte length of data are part of the state update, so messages cannot
// be re-framed across append boundaries without changing the challenges.
func (t *Transcript) Append(label string, data []byte) {
	t.ratchet(tagAppend, label, data)
}

// ChallengeBytes derives n pseudorandom bytes bound to everything appended
// so far, then advances the state so that subsequent challenges differ.
func (t *Transcript) ChallengeBytes(label string, n int) []byte {
	out := make([]byte, 0, n+t.h.Size())
	var block [8]byte
	for ctr := uint64(0); len(out) < n; ctr++ {
		t.h.Reset()
		t.h.Write(t.state)
		t.h.Write([]byte{tagChallenge})
		writeLenPrefixed(t.h, []byte(label))
		binary.BigEndian.PutUint64(block[:], ctr)
		t.h.Write(block[:])
		out = t.h.Sum(out)
	}
	binary.BigEndian.PutUint64(block[:], uint64(n))
	t.ratchet(tagChallenge, label, block[:])
	return out[:n]
}

func (t *Transcript) ratchet(tag byte, label string, data []byte) {
	t.h.Reset()
	t.h.Write(t.state)
	t.h.Write([]byte{tag})
	writeLenPrefixed(t.h, []byte(label))
	writeLenPrefixed(t.h, data)
	t.state = t.h.Sum(t.state[:0])
}

func writeLenPrefixed(h hash.Hash, b []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(b)))
	h.Write(size[:])
	h.Write(b)
}
