// Package poly implements dense univariate polynomial arithmetic over the
// BLS12-381 scalar field. Polynomials are coefficient slices, low degree
// first; the zero polynomial is any slice whose coefficients are all zero,
// including the empty slice.
package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrDivisorIsZero is returned when dividing or interpolating against a
// degenerate divisor: a zero denominator polynomial, or a point set with
// duplicates (which collapses a Lagrange denominator to zero).
var ErrDivisorIsZero = errors.New("divisor is the zero polynomial")

// Powers returns [1, e, e², …, e^(n-1)].
func Powers(e fr.Element, n int) []fr.Element {
	res := make([]fr.Element, n)
	if n == 0 {
		return res
	}
	res[0].SetOne()
	for i := 1; i < n; i++ {
		res[i].Mul(&res[i-1], &e)
	}
	return res
}

// Eval returns p(x), computed with Horner's method.
func Eval(p []fr.Element, x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, &x).Add(&res, &p[i])
	}
	return res
}

// Mul returns a*b by schoolbook multiplication. Point sets are small
// relative to polynomial degree, so the quadratic cost is acceptable where
// this is used.
func Mul(a, b []fr.Element) []fr.Element {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	res := make([]fr.Element, len(a)+len(b)-1)
	var t fr.Element
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			t.Mul(&a[i], &b[j])
			res[i+j].Add(&res[i+j], &t)
		}
	}
	return res
}

// Vanishing returns the monic polynomial Z(X) = Π (X - pᵢ), built by
// iterated multiplication of the monomial factors starting from the
// constant 1. Vanishing(nil) is the constant 1.
func Vanishing(points []fr.Element) []fr.Element {
	one := fr.One()
	res := []fr.Element{one}
	for i := range points {
		var negP fr.Element
		negP.Neg(&points[i])
		res = Mul(res, []fr.Element{negP, one})
	}
	return res
}

// LinearCombination returns Σ challenges[i]·polys[i] as a single dense
// polynomial, or nil when no polynomials are given. Polynomials may have
// different lengths; the result has the length of the longest one.
func LinearCombination(polys [][]fr.Element, challenges []fr.Element) []fr.Element {
	if len(polys) == 0 {
		return nil
	}
	maxLen := 0
	for i := range polys {
		if len(polys[i]) > maxLen {
			maxLen = len(polys[i])
		}
	}
	res := make([]fr.Element, maxLen)
	var t fr.Element
	for i := range polys {
		for j := range polys[i] {
			t.Mul(&polys[i][j], &challenges[i])
			res[j].Add(&res[j], &t)
		}
	}
	return res
}

// degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func degree(p []fr.Element) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// DivQR returns the quotient and remainder of num/denom by long division,
// so that num = q·denom + r with deg(r) < deg(denom). It returns
// ErrDivisorIsZero when denom is the zero polynomial.
func DivQR(num, denom []fr.Element) (q, r []fr.Element, err error) {
	dDeg := degree(denom)
	if dDeg < 0 {
		return nil, nil, ErrDivisorIsZero
	}
	nDeg := degree(num)
	if nDeg < dDeg {
		r = make([]fr.Element, nDeg+1)
		copy(r, num[:nDeg+1])
		return []fr.Element{}, r, nil
	}

	rem := make([]fr.Element, nDeg+1)
	copy(rem, num[:nDeg+1])
	q = make([]fr.Element, nDeg-dDeg+1)

	var leadInv, c, t fr.Element
	leadInv.Inverse(&denom[dDeg])
	for i := nDeg; i >= dDeg; i-- {
		if rem[i].IsZero() {
			continue
		}
		c.Mul(&rem[i], &leadInv)
		q[i-dDeg].Set(&c)
		for j := 0; j <= dDeg; j++ {
			t.Mul(&c, &denom[j])
			rem[i-dDeg+j].Sub(&rem[i-dDeg+j], &t)
		}
	}
	return q, rem[:dDeg], nil
}

// LagrangeCtx caches the barycentric data for interpolation over a fixed
// point set: the vanishing polynomial and the inverted Lagrange
// denominators 1/Π_{k≠j}(x_j - x_k). Safe for concurrent read-only use.
type LagrangeCtx struct {
	points    []fr.Element
	weights   []fr.Element
	vanishing []fr.Element
}

// NewLagrangeCtx precomputes interpolation data for the given points. A
// duplicated point makes a Lagrange denominator vanish and yields
// ErrDivisorIsZero.
func NewLagrangeCtx(points []fr.Element) (*LagrangeCtx, error) {
	n := len(points)
	denoms := make([]fr.Element, n)
	var t fr.Element
	for j := 0; j < n; j++ {
		denoms[j].SetOne()
		for k := 0; k < n; k++ {
			if k == j {
				continue
			}
			t.Sub(&points[j], &points[k])
			denoms[j].Mul(&denoms[j], &t)
		}
		if denoms[j].IsZero() {
			return nil, ErrDivisorIsZero
		}
	}
	pts := make([]fr.Element, n)
	copy(pts, points)
	return &LagrangeCtx{
		points:    pts,
		weights:   fr.BatchInvert(denoms),
		vanishing: Vanishing(points),
	}, nil
}

// Vanishing returns the cached vanishing polynomial of the point set. The
// caller must not mutate it.
func (c *LagrangeCtx) Vanishing() []fr.Element {
	return c.vanishing
}

// Interpolate returns the unique polynomial of degree < n taking
// values[j] at points[j]. values must have the length of the point set.
func (c *LagrangeCtx) Interpolate(values []fr.Element) []fr.Element {
	n := len(c.points)
	res := make([]fr.Element, n)
	quot := make([]fr.Element, n)
	var coeff, t fr.Element
	for j := 0; j < n; j++ {
		coeff.Mul(&values[j], &c.weights[j])
		if coeff.IsZero() {
			continue
		}
		// Z(X)/(X - x_j) by synthetic division; Z is monic of degree n.
		quot[n-1].SetOne()
		for i := n - 2; i >= 0; i-- {
			t.Mul(&c.points[j], &quot[i+1])
			quot[i].Add(&t, &c.vanishing[i+1])
		}
		for i := 0; i < n; i++ {
			t.Mul(&coeff, &quot[i])
			res[i].Add(&res[i], &t)
		}
	}
	return res
}

// Interpolate is the one-shot form of LagrangeCtx.Interpolate for callers
// that do not reuse the point set.
func Interpolate(points, values []fr.Element) ([]fr.Element, error) {
	ctx, err := NewLagrangeCtx(points)
	if err != nil {
		return nil, err
	}
	return ctx.Interpolate(values), nil
}
