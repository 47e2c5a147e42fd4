package multiproof

import "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

// checkOpeningSizes validates the prover-side input shapes before any
// cryptographic work: one evaluation row per polynomial, one evaluation per
// point in every row. Pure; errors echo the offending counts.
func checkOpeningSizes(evals [][]fr.Element, polys [][]fr.Element, points []fr.Element) error {
	if len(evals) != len(polys) {
		return EvalsAndPolysDifferentSizesError{NEvalRows: len(evals), NPolys: len(polys)}
	}
	for _, row := range evals {
		if len(row) != len(points) {
			return EvalsAndPointsDifferentSizesError{NEvals: len(row), NPoints: len(points)}
		}
	}
	return nil
}

// checkVerifySizes is the verifier-side counterpart: one commitment per
// evaluation row, row lengths matching the point set.
func checkVerifySizes(commitments []Commitment, points []fr.Element, evals [][]fr.Element) error {
	if len(evals) != len(commitments) {
		return EvalsAndCommitsDifferentSizesError{NEvals: len(evals), NCommits: len(commitments)}
	}
	for _, row := range evals {
		if len(row) != len(points) {
			return EvalsAndPointsDifferentSizesError{NEvals: len(row), NPoints: len(points)}
		}
	}
	return nil
}
