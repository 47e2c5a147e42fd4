package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multiproof/internal/poly"
	"github.com/consensys/multiproof/internal/utils"
	"github.com/consensys/multiproof/transcript"
)

// M1 opens and verifies against arbitrary point sets supplied per call.
// Nothing is cached, so there is no setup beyond the SRS; the cost of the
// vanishing-polynomial and interpolation work scales with the point-set
// size on every call.
//
// M1 is stateless across calls and safe for concurrent use; only the
// per-call transcript is mutable.
type M1 struct {
	srs *SRS
	cfg ecc.MultiExpConfig
}

var _ Scheme = (*M1)(nil)

// NewM1 wraps an SRS into the generic scheme.
func NewM1(srs *SRS, opts ...Option) (*M1, error) {
	if srs == nil || len(srs.G1) < 2 || len(srs.G2) < 2 {
		return nil, ErrMinSRSSize
	}
	return &M1{srs: srs, cfg: newConfig(opts...).multiExpConfig()}, nil
}

// MaxDegree returns the largest committable polynomial degree.
func (m *M1) MaxDegree() int {
	return len(m.srs.G1) - 1
}

// MaxPoints returns the largest verifiable point-set size.
func (m *M1) MaxPoints() int {
	return len(m.srs.G2) - 1
}

// Commit commits to a dense coefficient vector, low degree first.
func (m *M1) Commit(p []fr.Element) (Commitment, error) {
	return msmG1(m.srs.G1, p, m.cfg)
}

// Open proves that polys[i](points[j]) == evals[i][j] for all i, j.
//
// The shape checks run before any cryptography. The transcript is advanced
// by the evaluations, the points and the derived batching challenge, in
// that order; Verify replays the same sequence.
func (m *M1) Open(t *transcript.Transcript, evals [][]fr.Element, polys [][]fr.Element, points []fr.Element) (Proof, error) {
	if err := checkOpeningSizes(evals, polys, points); err != nil {
		return Proof{}, err
	}
	if len(points) == 0 {
		return Proof{}, ErrNoPointsGiven
	}
	if err := transcribePointsAndEvals(t, points, evals); err != nil {
		return Proof{}, err
	}
	gamma := challengeScalar(t, labelGamma)
	gammas := poly.Powers(gamma, len(polys))

	agg := poly.LinearCombination(polys, gammas)
	if agg == nil {
		return Proof{}, ErrNoPolynomialsGiven
	}

	return openAggregated(agg, poly.Vanishing(points), m.srs, m.cfg)
}

// Verify checks a proof against commitments and the claimed evaluations.
// It returns false with a nil error when the proof is well formed but does
// not check out; errors are reserved for malformed inputs.
func (m *M1) Verify(t *transcript.Transcript, commitments []Commitment, points []fr.Element, evals [][]fr.Element, proof Proof) (bool, error) {
	if err := checkVerifySizes(commitments, points, evals); err != nil {
		return false, err
	}
	if len(points) == 0 {
		return false, ErrNoPointsGiven
	}
	if len(commitments) == 0 {
		return false, ErrNoPolynomialsGiven
	}
	if err := transcribePointsAndEvals(t, points, evals); err != nil {
		return false, err
	}
	gamma := challengeScalar(t, labelGamma)
	gammas := poly.Powers(gamma, len(commitments))

	lag, err := poly.NewLagrangeCtx(points)
	if err != nil {
		return false, err
	}
	zG2, err := msmG2(m.srs.G2, lag.Vanishing(), m.cfg)
	if err != nil {
		return false, err
	}
	return verifyAggregated(commitments, gammas, evals, lag, zG2, proof, m.srs, m.cfg)
}

// openAggregated commits to the quotient of the challenge-aggregated
// polynomial by the vanishing polynomial of the point set. The remainder of
// the division is the interpolant of the aggregated evaluations and is
// discarded; the verifier reconstructs its commitment on its own.
func openAggregated(agg, vanishing []fr.Element, srs *SRS, cfg ecc.MultiExpConfig) (Proof, error) {
	q, _, err := poly.DivQR(agg, vanishing)
	if err != nil {
		return Proof{}, err
	}
	w, err := msmG1(srs.G1, q, cfg)
	if err != nil {
		return Proof{}, err
	}
	return Proof{W: w}, nil
}

// verifyAggregated evaluates the pairing equation
//
//	e(Σγⁱ·Cᵢ - [r(τ)]₁, [1]₂) == e(W, [Z(τ)]₂)
//
// where r interpolates the γ-weighted evaluations over the point set and Z
// is its vanishing polynomial.
func verifyAggregated(commitments []Commitment, gammas []fr.Element, evals [][]fr.Element, lag *poly.LagrangeCtx, zG2 bls12381.G2Affine, proof Proof, srs *SRS, cfg ecc.MultiExpConfig) (bool, error) {
	var agg bls12381.G1Affine
	if _, err := agg.MultiExp(commitments, gammas, cfg); err != nil {
		return false, err
	}

	// γ-weighted evaluations, one per point; columns are independent
	nPoints := len(lag.Vanishing()) - 1
	weighted := make([]fr.Element, nPoints)
	maxCpus := []int(nil)
	if cfg.NbTasks > 0 {
		maxCpus = []int{cfg.NbTasks}
	}
	utils.Parallelize(nPoints, func(start, end int) {
		var t fr.Element
		for j := start; j < end; j++ {
			for i := range evals {
				t.Mul(&gammas[i], &evals[i][j])
				weighted[j].Add(&weighted[j], &t)
			}
		}
	}, maxCpus...)

	rCommit, err := msmG1(srs.G1, lag.Interpolate(weighted), cfg)
	if err != nil {
		return false, err
	}

	var lhs, negW bls12381.G1Affine
	lhs.Sub(&agg, &rCommit)
	negW.Neg(&proof.W)
	return bls12381.PairingCheck(
		[]bls12381.G1Affine{lhs, negW},
		[]bls12381.G2Affine{srs.G2[0], zG2},
	)
}
