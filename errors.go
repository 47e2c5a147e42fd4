package multiproof

import (
	"errors"
	"fmt"

	"github.com/consensys/multiproof/internal/poly"
)

var (
	// ErrDivisorIsZero reports a degenerate division: a zero vanishing
	// polynomial or a point set with duplicates. It is unreachable for
	// well-formed, duplicate-free, non-empty point sets; seeing it means a
	// construction bug or a malformed point set, not a retryable condition.
	ErrDivisorIsZero = poly.ErrDivisorIsZero

	// ErrNoPolynomialsGiven is returned when an opening or verification is
	// requested for an empty polynomial (or commitment) set.
	ErrNoPolynomialsGiven = errors.New("expected polynomials, none were given")

	// ErrNoPointsGiven is returned when the evaluation point set is empty.
	ErrNoPointsGiven = errors.New("expected points, none were given")

	// ErrSerialization collapses failures of the byte-encoding layer into a
	// single kind; the codec cause is wrapped but callers should only match
	// on this sentinel.
	ErrSerialization = errors.New("serialization failed")

	// ErrMinSRSSize is returned when constructing an SRS too small to commit
	// to anything.
	ErrMinSRSSize = errors.New("minimum srs size is 2")
)

// TooManyScalarsError is returned when a coefficient vector is longer than
// the SRS prefix it must be committed against.
type TooManyScalarsError struct {
	NCoeffs     int
	ExpectedMax int
}

func (e TooManyScalarsError) Error() string {
	return fmt.Sprintf("given %d coefficients, srs supports at most %d", e.NCoeffs, e.ExpectedMax)
}

// EvalsIncorrectSizeError is returned when an evaluation row does not match
// the point-set length at transcription time.
type EvalsIncorrectSizeError struct {
	Poly     int
	N        int
	Expected int
}

func (e EvalsIncorrectSizeError) Error() string {
	return fmt.Sprintf("evaluations for polynomial %d have size %d, expected %d", e.Poly, e.N, e.Expected)
}

// EvalsAndPolysDifferentSizesError is returned when the number of
// evaluation rows does not match the number of polynomials.
type EvalsAndPolysDifferentSizesError struct {
	NEvalRows int
	NPolys    int
}

func (e EvalsAndPolysDifferentSizesError) Error() string {
	return fmt.Sprintf("given %d evaluation rows, but %d polynomials", e.NEvalRows, e.NPolys)
}

// EvalsAndPointsDifferentSizesError is returned when an evaluation row does
// not match the point-set length.
type EvalsAndPointsDifferentSizesError struct {
	NEvals  int
	NPoints int
}

func (e EvalsAndPointsDifferentSizesError) Error() string {
	return fmt.Sprintf("given %d points, but %d evaluations", e.NPoints, e.NEvals)
}

// EvalsAndCommitsDifferentSizesError is returned when the number of
// commitments does not match the number of evaluation rows.
type EvalsAndCommitsDifferentSizesError struct {
	NEvals   int
	NCommits int
}

func (e EvalsAndCommitsDifferentSizesError) Error() string {
	return fmt.Sprintf("given %d commitments, but %d evaluation rows", e.NCommits, e.NEvals)
}

// DomainConstructionError is returned when no evaluation domain of the
// requested size exists for the scalar field.
type DomainConstructionError struct {
	Size int
}

func (e DomainConstructionError) Error() string {
	return fmt.Sprintf("unable to construct a domain of size %d", e.Size)
}

// UnknownPointSetError is returned when a precomputed point-set index was
// never registered. This is a usage error; the registry is fixed at
// construction time.
type UnknownPointSetError struct {
	Index int
	NSets int
}

func (e UnknownPointSetError) Error() string {
	return fmt.Sprintf("point set %d is not registered (have %d sets)", e.Index, e.NSets)
}
