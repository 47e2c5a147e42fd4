// Package multiproof implements a KZG-style polynomial commitment scheme
// over BLS12-381 with batched openings: a single constant-size proof shows
// that many committed polynomials take claimed values at many evaluation
// points simultaneously.
//
// Two interchangeable variants implement the same commit/open/verify
// contract:
//   - M1 accepts an arbitrary point set on every call and rebuilds the
//     vanishing-polynomial data on the fly;
//   - M2 amortizes that work across calls by registering a fixed collection
//     of point sets at construction time, addressed by index.
//
// Challenges are derived through a Fiat-Shamir transcript
// (github.com/consensys/multiproof/transcript). The prover and the verifier
// must feed their transcripts identically ordered data or all proofs fail;
// both variants fix the order as evaluations, then points, then the
// batching challenge.
//
// The SRS (structured reference string) is supplied by the caller. NewSRS
// derives one from a known secret and is meant for tests and tooling; in
// production the SRS must come from a trusted-setup ceremony.
package multiproof

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
