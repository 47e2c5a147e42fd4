package multiproof

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multiproof/internal/poly"
	"github.com/consensys/multiproof/logger"
)

// SRS is the structured reference string shared by all commit, open and
// verify calls: powers of a secret τ in both source groups,
// G1[i] = [τⁱ]₁ and G2[i] = [τⁱ]₂. G1 bounds the committable degree, G2
// bounds the point-set size (verifying against n points needs n+1 G2
// powers). Immutable after construction and safe for concurrent reads.
type SRS struct {
	G1 []bls12381.G1Affine
	G2 []bls12381.G2Affine
}

// NewSRS builds an SRS of nG1 G1 powers and nG2 G2 powers of tau.
//
// Knowing tau breaks binding, so this is for tests and local tooling only;
// a production SRS comes from a trusted-setup ceremony and is loaded with
// ReadFrom.
func NewSRS(nG1, nG2 uint64, tau *big.Int) (*SRS, error) {
	if nG1 < 2 || nG2 < 2 {
		return nil, ErrMinSRSSize
	}

	log := logger.Logger().With().Str("package", "multiproof").Logger()
	start := time.Now()

	var frTau fr.Element
	frTau.SetBigInt(tau)
	n := nG1
	if nG2 > n {
		n = nG2
	}
	scalars := poly.Powers(frTau, int(n))

	_, _, g1Gen, g2Gen := bls12381.Generators()
	srs := &SRS{
		G1: bls12381.BatchScalarMultiplicationG1(&g1Gen, scalars[:nG1]),
		G2: bls12381.BatchScalarMultiplicationG2(&g2Gen, scalars[:nG2]),
	}

	log.Debug().Dur("took", time.Since(start)).Uint64("nG1", nG1).Uint64("nG2", nG2).Msg("srs generated")
	return srs, nil
}

// NewSRSRandom is NewSRS with tau drawn from crypto/rand and discarded.
func NewSRSRandom(nG1, nG2 uint64) (*SRS, error) {
	tau, err := rand.Int(rand.Reader, fr.Modulus())
	if err != nil {
		return nil, err
	}
	return NewSRS(nG1, nG2, tau)
}

// WriteTo writes the SRS in compressed form. It implements io.WriterTo.
func (s *SRS) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	if err := enc.Encode(s.G1); err != nil {
		return enc.BytesWritten(), fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if err := enc.Encode(s.G2); err != nil {
		return enc.BytesWritten(), fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return enc.BytesWritten(), nil
}

// maxSRSPoints bounds the number of points accepted per group when decoding
// an SRS. The stream is untrusted; a larger count means a corrupt or hostile
// length prefix and is rejected before anything is allocated.
const maxSRSPoints = 1 << 27

func readPointCount(r io.Reader) (uint32, int64, error) {
	var buf [4]byte
	read, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, int64(read), fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	count := binary.BigEndian.Uint32(buf[:])
	if count > maxSRSPoints {
		return 0, int64(read), fmt.Errorf("%w: length prefix %d exceeds maximum %d", ErrSerialization, count, maxSRSPoints)
	}
	return count, int64(read), nil
}

// ReadFrom reads an SRS written by WriteTo. It implements io.ReaderFrom.
// The length prefixes are validated against maxSRSPoints before any
// allocation; all points are subgroup-checked by the decoder.
func (s *SRS) ReadFrom(r io.Reader) (int64, error) {
	nG1, n, err := readPointCount(r)
	if err != nil {
		return n, err
	}
	dec := bls12381.NewDecoder(r)
	s.G1 = make([]bls12381.G1Affine, nG1)
	for i := range s.G1 {
		if err := dec.Decode(&s.G1[i]); err != nil {
			return n + dec.BytesRead(), fmt.Errorf("%w: %v", ErrSerialization, err)
		}
	}
	n += dec.BytesRead()

	nG2, read, err := readPointCount(r)
	n += read
	if err != nil {
		return n, err
	}
	dec = bls12381.NewDecoder(r)
	s.G2 = make([]bls12381.G2Affine, nG2)
	for i := range s.G2 {
		if err := dec.Decode(&s.G2[i]); err != nil {
			return n + dec.BytesRead(), fmt.Errorf("%w: %v", ErrSerialization, err)
		}
	}
	return n + dec.BytesRead(), nil
}
