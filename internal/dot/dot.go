// Package dot renders a game as a Graphviz multidigraph (§6.2): a hidden
// sentinel node points at the initial state, transitions become labelled
// directed edges, and each player's observation equivalences become
// dashed edges coloured per player.
package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/HelmerNylen/mkbsc/internal/kgraph"
)

// Rendering selects which of the three knowledge-value renderings labels
// each node.
type Rendering int

const (
	// Verbose uses Value.Verbose.
	Verbose Rendering = iota
	// Nice uses Value.Nice (the default; compact nested-set notation).
	Nice
	// Isocheck uses Value.Isocheck (the minimal consistent base).
	Isocheck
)

var playerColors = []string{"#d62728", "#1f77b4", "#2ca02c", "#9467bd", "#ff7f0e", "#8c564b"}

func playerColor(player int) string {
	return playerColors[player%len(playerColors)]
}

// Write renders g as a ".dot" multidigraph.
func Write(w io.Writer, g *kgraph.Game, rendering Rendering) error {
	var b strings.Builder

	b.WriteString("digraph mkbsc {\n")
	b.WriteString("\trankdir=LR;\n")
	b.WriteString("\tnode [shape=ellipse];\n")

	ids := assignIDs(g.States())

	fmt.Fprintf(&b, "\t__sentinel__ [shape=point, style=invis];\n")
	fmt.Fprintf(&b, "\t__sentinel__ -> n%d;\n", ids[g.Initial()])

	for _, s := range g.States() {
		label := renderLabel(s, rendering)
		fmt.Fprintf(&b, "\tn%d [label=%q];\n", ids[s], label)
	}

	for _, t := range g.Transitions() {
		fmt.Fprintf(&b, "\tn%d -> n%d [label=%q];\n", ids[t.From], ids[t.To], t.Label())
	}

	for player := 0; player < g.PlayerCount(); player++ {
		color := playerColor(player)
		for _, obs := range g.Partitioning(player).Observations() {
			states := obs.States()
			memberIDs := make([]int, len(states))
			for i, s := range states {
				memberIDs[i] = ids[s]
			}
			sort.Ints(memberIDs)
			for i := 0; i+1 < len(memberIDs); i++ {
				fmt.Fprintf(&b, "\tn%d -> n%d [dir=none, style=dashed, color=%q, label=%q];\n",
					memberIDs[i], memberIDs[i+1], color, fmt.Sprintf("obs%d", player))
			}
		}
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderLabel(s kgraph.State, rendering Rendering) string {
	switch rendering {
	case Verbose:
		return s.Verbose()
	case Isocheck:
		return s.Isocheck()
	default:
		return s.Nice()
	}
}

func assignIDs(states []kgraph.State) map[kgraph.State]int {
	ids := make(map[kgraph.State]int, len(states))
	for i, s := range states {
		ids[s] = i
	}
	return ids
}
