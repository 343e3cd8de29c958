// Package kbsc implements knowledge-based subset construction (§4): the
// single-player construction that makes one player's imperfect information
// explicit as a game over knowledge states, and its generalization to
// coalitions of players via the synchronous product of per-player
// projections (§4.5).
package kbsc

import (
	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
)

// KBSC computes one iteration of knowledge-based subset construction over
// g. For a single-player game this is the direct subset construction of
// §4.3. For a coalition of two or more players, each player's game is
// first projected to their own action component and recursively KBSC'd,
// and the results are recombined with the original game via the
// synchronous product of §4.4.
//
// An EmptyConstructionError raised anywhere in the construction (an
// ill-formed game producing an empty knowledge set) is recovered here and returned as an ordinary error,
// since KBSC is the package boundary callers are expected to handle.
func KBSC(g *kgraph.Game) (result *kgraph.Game, err error) {
	defer kerrors.Recover(&err)
	return kbsc(g)
}

func kbsc(g *kgraph.Game) (*kgraph.Game, error) {
	if g.PlayerCount() == 1 {
		return singlePlayerKBSC(g)
	}

	projected := make([]*kgraph.Game, g.PlayerCount())
	for i := range projected {
		p, err := g.Project(i)
		if err != nil {
			return nil, err
		}
		k, err := kbsc(p)
		if err != nil {
			return nil, err
		}
		projected[i] = k
	}

	return synchronousProduct(g, projected)
}
