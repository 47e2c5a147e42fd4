package multiproof

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Commitment is a KZG commitment to a polynomial: a single G1 point bound
// to the SRS used to produce it.
type Commitment = bls12381.G1Affine

// Proof is the output of an opening: the commitment to the quotient
// polynomial witnessing all claimed evaluations at once. It is consumed by
// a single verification and is otherwise opaque.
type Proof struct {
	W bls12381.G1Affine
}

// WriteTo writes the proof in compressed form.
func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	if err := enc.Encode(&p.W); err != nil {
		return enc.BytesWritten(), fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return enc.BytesWritten(), nil
}

// ReadFrom reads a proof written by WriteTo. The point is subgroup-checked.
func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	if err := dec.Decode(&p.W); err != nil {
		return dec.BytesRead(), fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return dec.BytesRead(), nil
}
