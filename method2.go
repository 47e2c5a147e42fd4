package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multiproof/internal/poly"
	"github.com/consensys/multiproof/logger"
	"github.com/consensys/multiproof/transcript"
)

// M2 amortizes the per-point-set work of M1 across many calls: every point
// set is registered once at construction and addressed by index afterwards.
// For each set the vanishing polynomial, its G2 commitment and the Lagrange
// interpolation data are computed once and reused by every open and verify.
//
// An M2 proof verifies under M1 with the same points and vice versa: both
// variants feed the transcript identically.
//
// The registry is immutable after construction; M2 is safe for concurrent
// use.
type M2 struct {
	srs  *SRS
	cfg  ecc.MultiExpConfig
	sets []pointSet
}

type pointSet struct {
	points []fr.Element
	lag    *poly.LagrangeCtx
	zG2    bls12381.G2Affine
}

var _ PrecompScheme = (*M2)(nil)

// NewM2 registers the given point sets against the SRS. Every set must be
// non-empty (ErrNoPointsGiven), duplicate-free (ErrDivisorIsZero) and small
// enough for the G2 powers of the SRS (TooManyScalarsError).
func NewM2(srs *SRS, pointSets [][]fr.Element, opts ...Option) (*M2, error) {
	if srs == nil || len(srs.G1) < 2 || len(srs.G2) < 2 {
		return nil, ErrMinSRSSize
	}
	cfg := newConfig(opts...).multiExpConfig()

	m := &M2{srs: srs, cfg: cfg, sets: make([]pointSet, len(pointSets))}
	for i, points := range pointSets {
		if len(points) == 0 {
			return nil, ErrNoPointsGiven
		}
		lag, err := poly.NewLagrangeCtx(points)
		if err != nil {
			return nil, err
		}
		zG2, err := msmG2(srs.G2, lag.Vanishing(), cfg)
		if err != nil {
			return nil, err
		}
		pts := make([]fr.Element, len(points))
		copy(pts, points)
		m.sets[i] = pointSet{points: pts, lag: lag, zG2: zG2}
	}

	log := logger.Logger().With().Str("package", "multiproof").Logger()
	log.Debug().Int("nbPointSets", len(pointSets)).Msg("point set registry built")
	return m, nil
}

// PointSet returns the points registered under the given index.
func (m *M2) PointSet(set int) ([]fr.Element, error) {
	ps, err := m.set(set)
	if err != nil {
		return nil, err
	}
	return ps.points, nil
}

func (m *M2) set(i int) (*pointSet, error) {
	if i < 0 || i >= len(m.sets) {
		return nil, UnknownPointSetError{Index: i, NSets: len(m.sets)}
	}
	return &m.sets[i], nil
}

// Commit commits to a dense coefficient vector, low degree first.
func (m *M2) Commit(p []fr.Element) (Commitment, error) {
	return msmG1(m.srs.G1, p, m.cfg)
}

// OpenSet proves that polys[i] takes evals[i][j] at the j-th point of the
// registered set. The transcript sequence is the one M1.Open uses with the
// same points.
func (m *M2) OpenSet(t *transcript.Transcript, evals [][]fr.Element, polys [][]fr.Element, set int) (Proof, error) {
	ps, err := m.set(set)
	if err != nil {
		return Proof{}, err
	}
	if err := checkOpeningSizes(evals, polys, ps.points); err != nil {
		return Proof{}, err
	}
	if err := transcribePointsAndEvals(t, ps.points, evals); err != nil {
		return Proof{}, err
	}
	gamma := challengeScalar(t, labelGamma)
	gammas := poly.Powers(gamma, len(polys))

	agg := poly.LinearCombination(polys, gammas)
	if agg == nil {
		return Proof{}, ErrNoPolynomialsGiven
	}

	return openAggregated(agg, ps.lag.Vanishing(), m.srs, m.cfg)
}

// VerifySet checks a proof against commitments and claimed evaluations over
// the registered point set. False with a nil error means a well-formed
// proof that does not check out.
func (m *M2) VerifySet(t *transcript.Transcript, commitments []Commitment, set int, evals [][]fr.Element, proof Proof) (bool, error) {
	ps, err := m.set(set)
	if err != nil {
		return false, err
	}
	if err := checkVerifySizes(commitments, ps.points, evals); err != nil {
		return false, err
	}
	if len(commitments) == 0 {
		return false, ErrNoPolynomialsGiven
	}
	if err := transcribePointsAndEvals(t, ps.points, evals); err != nil {
		return false, err
	}
	gamma := challengeScalar(t, labelGamma)
	gammas := poly.Powers(gamma, len(commitments))

	return verifyAggregated(commitments, gammas, evals, ps.lag, ps.zG2, proof, m.srs, m.cfg)
}
