package multiproof

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// the scalar field has two-adicity 32
const maxDomainSize = 1 << 32

// ExtendCommitments treats the n input commitments as the evaluations of an
// implicit degree n-1 polynomial over the n-th roots-of-unity domain and
// returns its evaluations over the outputSize-th roots-of-unity domain.
// Commitments are additively homomorphic and the transforms are linear, so
// the result equals what committing to the extended evaluations directly
// would give, without ever touching the underlying scalar polynomials.
// Erasure-coded data availability uses this to commit once per row and
// derive the commitments of the extended row.
//
// Both sizes must be powers of two within the field's two-adic subgroup, or
// a DomainConstructionError is returned.
func ExtendCommitments(commitments []Commitment, outputSize int) ([]Commitment, error) {
	domain, err := commitmentDomain(len(commitments))
	if err != nil {
		return nil, err
	}
	domainExt, err := commitmentDomain(outputSize)
	if err != nil {
		return nil, err
	}

	vals := make([]bls12381.G1Jac, len(commitments), max(len(commitments), outputSize))
	for i := range commitments {
		vals[i].FromAffine(&commitments[i])
	}

	// commitments -> coefficients of the commitment polynomial, in-group
	vals = fftG1(vals, domain.GeneratorInv)
	var nInv big.Int
	domain.CardinalityInv.BigInt(&nInv)
	for i := range vals {
		vals[i].ScalarMultiplication(&vals[i], &nInv)
	}

	// coefficients -> evaluations over the extended domain; the appended
	// jacobian zero values are the point at infinity
	vals = vals[:min(len(vals), outputSize)]
	vals = append(vals, make([]bls12381.G1Jac, outputSize-len(vals))...)
	vals = fftG1(vals, domainExt.Generator)

	return bls12381.BatchJacobianToAffineG1(vals), nil
}

func commitmentDomain(size int) (*fft.Domain, error) {
	if size == 0 || size > maxDomainSize || size&(size-1) != 0 {
		return nil, DomainConstructionError{Size: size}
	}
	return fft.NewDomain(uint64(size)), nil
}

// fftG1 is a radix-2 DFT over G1: the usual butterfly with the twiddle
// multiplication lifted to a scalar multiplication in the group.
func fftG1(a []bls12381.G1Jac, omega fr.Element) []bls12381.G1Jac {
	n := len(a)
	if n == 1 {
		return a
	}
	half := n / 2
	even := make([]bls12381.G1Jac, half)
	odd := make([]bls12381.G1Jac, half)
	for i := 0; i < half; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}
	var omega2 fr.Element
	omega2.Square(&omega)
	even = fftG1(even, omega2)
	odd = fftG1(odd, omega2)

	res := make([]bls12381.G1Jac, n)
	w := fr.One()
	var wBig big.Int
	var t bls12381.G1Jac
	for k := 0; k < half; k++ {
		if w.IsOne() {
			t.Set(&odd[k])
		} else {
			t.ScalarMultiplication(&odd[k], w.BigInt(&wBig))
		}
		res[k].Set(&even[k]).AddAssign(&t)
		res[k+half].Set(&even[k]).SubAssign(&t)
		w.Mul(&w, &omega)
	}
	return res
}
