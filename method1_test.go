package multiproof

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/multiproof/transcript"
)

func TestM1OpenVerify(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 30)
	polys := randomPolys(t, 20, 50)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)

	ok, err := m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestM1WithNbTasks(t *testing.T) {
	// the task cap applies to the multi-exponentiations and to the
	// eval-weighting loop in Verify; a cap of 1 runs them serially and must
	// produce the same proofs and verdicts
	m, err := NewM1(testSRS(t), WithNbTasks(1))
	require.NoError(t, err)

	points := randomScalars(t, 12)
	polys := randomPolys(t, 4, 20)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)
	ok, err := m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.True(t, ok)

	wide, err := NewM1(testSRS(t), WithNbTasks(16))
	require.NoError(t, err)
	sameProof, err := wide.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)
	assert.Equal(t, proof, sameProof)
}

func TestM1SmallDegree(t *testing.T) {
	// polynomials of degree below the point count still open correctly;
	// the quotient is then the zero polynomial and the proof the identity
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 10)
	polys := randomPolys(t, 3, 4)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)
	ok, err := m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestM1PerturbedEvalFails(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 30)
	polys := randomPolys(t, 20, 50)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)
	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)

	for _, idx := range [][2]int{{0, 0}, {19, 29}, {7, 13}, {12, 3}, {4, 21}} {
		i, j := idx[0], idx[1]
		bad := evalMatrix(polys, points)
		one := fr.One()
		bad[i][j].Add(&bad[i][j], &one)

		ok, err := m.Verify(transcript.New("testing"), commitments, points, bad, proof)
		require.NoError(t, err)
		assert.False(t, ok, "perturbing evals[%d][%d] must fail verification", i, j)
	}
}

func TestM1WrongCommitmentFails(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 8)
	polys := randomPolys(t, 4, 20)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)
	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)

	commitments[2], commitments[3] = commitments[3], commitments[2]
	ok, err := m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestM1TranscriptMismatchFails(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 8)
	polys := randomPolys(t, 4, 20)
	evals := evalMatrix(polys, points)

	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)
	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)

	// different session label on the verifier side diverges the challenge
	ok, err := m.Verify(transcript.New("other session"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestM1BoundCommitments(t *testing.T) {
	// binding commitments before open/verify is fine as long as both sides
	// do it identically
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 8)
	polys := randomPolys(t, 4, 20)
	evals := evalMatrix(polys, points)
	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	tp := transcript.New("testing")
	BindCommitments(tp, "commitment", commitments)
	proof, err := m.Open(tp, evals, polys, points)
	require.NoError(t, err)

	tv := transcript.New("testing")
	BindCommitments(tv, "commitment", commitments)
	ok, err := m.Verify(tv, commitments, points, evals, proof)
	require.NoError(t, err)
	assert.True(t, ok)

	// asymmetric binding fails
	ok, err = m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestM1ShapeErrors(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 30)
	polys := randomPolys(t, 20, 50)
	evals := evalMatrix(polys, points)
	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)
	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)

	// missing evaluation row
	_, err = m.Open(transcript.New("testing"), evals[:19], polys, points)
	require.Equal(t, EvalsAndPolysDifferentSizesError{NEvalRows: 19, NPolys: 20}, err)

	// missing polynomial
	_, err = m.Open(transcript.New("testing"), evals, polys[:19], points)
	require.Equal(t, EvalsAndPolysDifferentSizesError{NEvalRows: 20, NPolys: 19}, err)

	// truncated evaluation row
	short := evalMatrix(polys, points)
	short[0] = short[0][:19]
	_, err = m.Open(transcript.New("testing"), short, polys, points)
	require.Equal(t, EvalsAndPointsDifferentSizesError{NEvals: 19, NPoints: 30}, err)

	// missing commitment
	_, err = m.Verify(transcript.New("testing"), commitments[:19], points, evals, proof)
	require.Equal(t, EvalsAndCommitsDifferentSizesError{NEvals: 20, NCommits: 19}, err)

	// truncated row on the verify side
	_, err = m.Verify(transcript.New("testing"), commitments, points, short, proof)
	require.Equal(t, EvalsAndPointsDifferentSizesError{NEvals: 19, NPoints: 30}, err)

	// empty point set
	empty := evalMatrix(polys, nil)
	_, err = m.Open(transcript.New("testing"), empty, polys, nil)
	require.ErrorIs(t, err, ErrNoPointsGiven)
	_, err = m.Verify(transcript.New("testing"), commitments, nil, empty, proof)
	require.ErrorIs(t, err, ErrNoPointsGiven)

	// no polynomials at all
	_, err = m.Open(transcript.New("testing"), nil, nil, points)
	require.ErrorIs(t, err, ErrNoPolynomialsGiven)
	_, err = m.Verify(transcript.New("testing"), nil, points, nil, proof)
	require.ErrorIs(t, err, ErrNoPolynomialsGiven)
}

func TestM1DuplicatePointsRejected(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	points := randomScalars(t, 8)
	points[5] = points[2]
	polys := randomPolys(t, 4, 20)
	evals := evalMatrix(polys, points)
	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	_, err = m.Verify(transcript.New("testing"), commitments, points, evals, Proof{})
	require.ErrorIs(t, err, ErrDivisorIsZero)
}

func TestM1TooManyPoints(t *testing.T) {
	m, err := NewM1(testSRS(t))
	require.NoError(t, err)

	// the vanishing polynomial needs len(points)+1 G2 powers
	points := randomScalars(t, testSRSG2)
	polys := randomPolys(t, 2, 10)
	evals := evalMatrix(polys, points)
	commitments, err := BatchCommit(m, polys)
	require.NoError(t, err)

	proof, err := m.Open(transcript.New("testing"), evals, polys, points)
	require.NoError(t, err)
	_, err = m.Verify(transcript.New("testing"), commitments, points, evals, proof)
	require.Equal(t, TooManyScalarsError{NCoeffs: testSRSG2 + 1, ExpectedMax: testSRSG2}, err)
}
