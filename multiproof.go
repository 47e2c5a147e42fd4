package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multiproof/transcript"
)

// Committer maps a dense coefficient vector to a commitment bound to the
// SRS.
type Committer interface {
	Commit(p []fr.Element) (Commitment, error)
}

// Scheme is the multi-proof contract for arbitrary point sets: open
// produces a proof that polys[i](points[j]) == evals[i][j] for all i, j,
// and verify checks it against commitments instead of polynomials.
//
// The transcript passed to Open and Verify is advanced by the call; each
// session needs a fresh transcript seeded with the same label on both
// sides. Verify returns false with a nil error for a well-formed proof that
// does not check out; errors are reserved for malformed inputs.
type Scheme interface {
	Committer
	Open(t *transcript.Transcript, evals [][]fr.Element, polys [][]fr.Element, points []fr.Element) (Proof, error)
	Verify(t *transcript.Transcript, commitments []Commitment, points []fr.Element, evals [][]fr.Element, proof Proof) (bool, error)
}

// PrecompScheme is the multi-proof contract over a registry of point sets
// fixed at construction time and addressed by index.
type PrecompScheme interface {
	Committer
	OpenSet(t *transcript.Transcript, evals [][]fr.Element, polys [][]fr.Element, set int) (Proof, error)
	VerifySet(t *transcript.Transcript, commitments []Commitment, set int, evals [][]fr.Element, proof Proof) (bool, error)
}

// Option configures a scheme at construction time.
type Option func(*config)

type config struct {
	nbTasks int
}

// WithNbTasks caps the number of goroutines used by the data-parallel parts
// of commit, open and verify. Defaults to the number of CPUs.
func WithNbTasks(n int) Option {
	return func(c *config) {
		c.nbTasks = n
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) multiExpConfig() ecc.MultiExpConfig {
	return ecc.MultiExpConfig{NbTasks: c.nbTasks}
}

// msmG1 computes Σ scalars[i]·bases[i] over the first len(scalars) bases.
func msmG1(bases []bls12381.G1Affine, scalars []fr.Element, cfg ecc.MultiExpConfig) (bls12381.G1Affine, error) {
	var res bls12381.G1Affine
	if len(scalars) > len(bases) {
		return res, TooManyScalarsError{NCoeffs: len(scalars), ExpectedMax: len(bases)}
	}
	if len(scalars) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(bases[:len(scalars)], scalars, cfg); err != nil {
		return res, err
	}
	return res, nil
}

func msmG2(bases []bls12381.G2Affine, scalars []fr.Element, cfg ecc.MultiExpConfig) (bls12381.G2Affine, error) {
	var res bls12381.G2Affine
	if len(scalars) > len(bases) {
		return res, TooManyScalarsError{NCoeffs: len(scalars), ExpectedMax: len(bases)}
	}
	if len(scalars) == 0 {
		return res, nil
	}
	if _, err := res.MultiExp(bases[:len(scalars)], scalars, cfg); err != nil {
		return res, err
	}
	return res, nil
}
