package kbsc

import "github.com/HelmerNylen/mkbsc/internal/kgraph"

// intersect returns the states common to both a and b, by structural key.
func intersect(a, b []kgraph.State) []kgraph.State {
	bset := make(map[string]bool, len(b))
	for _, s := range b {
		bset[s.Key()] = true
	}
	var out []kgraph.State
	for _, s := range a {
		if bset[s.Key()] {
			out = append(out, s)
		}
	}
	return out
}

// intersectNonEmpty reports whether a and b share any state, without
// materializing the full intersection.
func intersectNonEmpty(a, b []kgraph.State) bool {
	bset := make(map[string]bool, len(b))
	for _, s := range b {
		bset[s.Key()] = true
	}
	for _, s := range a {
		if bset[s.Key()] {
			return true
		}
	}
	return false
}

// filterIntersecting keeps the states of candidates whose own knowledge
// group overlaps possiblePost -- this is the "candidate next knowledge
// state must still be physically reachable" filter of §4.4 step (b).
func filterIntersecting(candidates []kgraph.State, possiblePost []kgraph.State) []kgraph.State {
	var out []kgraph.State
	for _, c := range candidates {
		if intersectNonEmpty(c.Group(0), possiblePost) {
			out = append(out, c)
		}
	}
	return out
}

// tupleKey builds a stable key for a tuple of states (one per player),
// used to detect when the BFS over product states revisits a tuple it has
// already processed.
func tupleKey(components []kgraph.State) string {
	key := make([]byte, 0, 16*len(components))
	for i, s := range components {
		if i > 0 {
			key = append(key, '|')
		}
		key = append(key, s.Key()...)
	}
	return string(key)
}

// cartesianProduct enumerates every combination taking one element from
// each slice in turn (mirrors the original's _permute helper, generalized
// beyond alphabets to any per-player candidate list).
func cartesianProduct(perPlayer [][]kgraph.State) [][]kgraph.State {
	for _, candidates := range perPlayer {
		if len(candidates) == 0 {
			return nil
		}
	}
	if len(perPlayer) == 0 {
		return nil
	}

	total := 1
	for _, candidates := range perPlayer {
		total *= len(candidates)
	}
	result := make([][]kgraph.State, 0, total)
	indices := make([]int, len(perPlayer))
	for {
		combo := make([]kgraph.State, len(perPlayer))
		for i, idx := range indices {
			combo[i] = perPlayer[i][idx]
		}
		result = append(result, combo)

		i := 0
		indices[i]++
		for i < len(indices) && indices[i] >= len(perPlayer[i]) {
			indices[i] = 0
			i++
			if i == len(indices) {
				return result
			}
			indices[i]++
		}
	}
}
