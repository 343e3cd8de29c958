// Package fixpoint drives KBSC to a fixed point modulo isomorphism
// (§4.7): it repeatedly applies kbsc.KBSC and compares each iteration
// against its predecessor, first structurally and then (if structurally
// stable) with observation equivalences folded in too.
package fixpoint

import (
	"github.com/HelmerNylen/mkbsc/internal/iso"
	"github.com/HelmerNylen/mkbsc/internal/kbsc"
	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
)

// Result holds the outcome of an IterateUntilIsomorphic run.
type Result struct {
	// Games holds every iteration produced, starting with the input
	// game at index 0.
	Games []*kgraph.Game
	// Sizes holds the state count of each game in Games, same indexing.
	Sizes []int
	// Status classifies why the loop stopped.
	Status Status
}

type options struct {
	onIteration func(iteration, size int, status Status)
}

// Option configures IterateUntilIsomorphic.
type Option func(*options)

// WithProgress registers a callback invoked after every iteration,
// including the final one, with that iteration's size and the status it
// would report if the loop stopped there. This is what lets the
// WebSocket delivery layer stream the size log as it is computed instead
// of waiting for the whole run to finish.
func WithProgress(fn func(iteration, size int, status Status)) Option {
	return func(o *options) { o.onIteration = fn }
}

// IterateUntilIsomorphic repeatedly applies KBSC to g, stopping when two
// consecutive iterations are isomorphic including observations
// (StableWithObservations) or when limit iterations have been performed.
// A structure-only stability (StableStructureOnly) is recorded in
// result.Status but does not itself stop the loop: the structure can
// stabilise one iteration before the observations do, and only the
// latter is a true fixpoint. A negative limit means unlimited; callers
// that expose this to untrusted input should always pass a finite limit,
// since not every game has a stable quotient.
func IterateUntilIsomorphic(g *kgraph.Game, limit int, opts ...Option) (result Result, err error) {
	defer kerrors.Recover(&err)

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	result.Games = []*kgraph.Game{g}
	result.Sizes = []int{len(g.States())}
	if o.onIteration != nil {
		o.onIteration(0, result.Sizes[0], NotStable)
	}

	for i := 0; limit < 0 || i < limit; i++ {
		prev := result.Games[len(result.Games)-1]
		next, kerr := kbsc.KBSC(prev)
		if kerr != nil {
			return result, kerr
		}
		result.Games = append(result.Games, next)
		result.Sizes = append(result.Sizes, len(next.States()))

		status := NotStable
		if iso.Check(prev, next, false) {
			if iso.Check(prev, next, true) {
				status = StableWithObservations
			} else {
				status = StableStructureOnly
			}
		}
		if o.onIteration != nil {
			o.onIteration(i+1, result.Sizes[i+1], status)
		}
		result.Status = status
		if status == StableWithObservations {
			return result, nil
		}
	}

	return result, nil
}
