package multiproof

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// BatchCommit commits to every polynomial of a batch. Commitments are
// computed fork-join style but returned in input order, so the result is
// byte-identical to committing sequentially.
func BatchCommit(c Committer, polys [][]fr.Element) ([]Commitment, error) {
	commitments := make([]Commitment, len(polys))
	var g errgroup.Group
	for i := range polys {
		g.Go(func() error {
			var err error
			commitments[i], err = c.Commit(polys[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return commitments, nil
}
