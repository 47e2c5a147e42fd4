package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multiproof/transcript"
)

// Transcript labels. Open and Verify must use them in the exact same order:
// evaluations, then points, then the batching challenge. Reordering breaks
// the Fiat-Shamir binding and makes every proof fail.
const (
	labelEvals  = "open evals"
	labelPoints = "open points"
	labelGamma  = "gamma"
)

// transcribePointsAndEvals appends the full evaluation matrix
// (polynomial-major, point-minor) under labelEvals, then the point set
// under labelPoints. Row lengths are re-checked here so the transcript can
// never silently bind a ragged matrix.
func transcribePointsAndEvals(t *transcript.Transcript, points []fr.Element, evals [][]fr.Element) error {
	nPoints := len(points)
	evalBytes := make([]byte, fr.Bytes*nPoints*len(evals))
	for i, row := range evals {
		if len(row) != nPoints {
			return EvalsIncorrectSizeError{Poly: i, N: len(row), Expected: nPoints}
		}
		for j := range row {
			b := row[j].Bytes()
			copy(evalBytes[(i*nPoints+j)*fr.Bytes:], b[:])
		}
	}
	t.Append(labelEvals, evalBytes)

	pointBytes := make([]byte, fr.Bytes*nPoints)
	for i := range points {
		b := points[i].Bytes()
		copy(pointBytes[i*fr.Bytes:], b[:])
	}
	t.Append(labelPoints, pointBytes)
	return nil
}

// challengeScalar derives a field element from the transcript by reducing
// fr.Bytes challenge bytes (big-endian) modulo the field order.
func challengeScalar(t *transcript.Transcript, label string) fr.Element {
	var e fr.Element
	e.SetBytes(t.ChallengeBytes(label, fr.Bytes))
	return e
}

// BindCommitments appends commitments to the transcript under the given
// label. Callers that want challenges bound to prior commitments (e.g. when
// chaining several openings in one session) must call it identically on the
// proving and verifying side, before Open and Verify respectively.
func BindCommitments(t *transcript.Transcript, label string, commitments []Commitment) {
	for i := range commitments {
		b := commitments[i].Bytes()
		t.Append(label, b[:])
	}
}
