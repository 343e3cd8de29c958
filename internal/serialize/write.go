package serialize

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

// Write serialises g to the ".game" text format. Ids are assigned
// topologically: every base atom reachable from g's states gets a lower
// id than every knowledge state, and a knowledge state's id is always
// greater than every id it references.
func Write(w io.Writer, g *kgraph.Game) error {
	atoms, infos := collectValues(g.States())
	id := make(map[*kvalue.Value]int, len(atoms)+len(infos))
	for i, v := range atoms {
		id[v] = i
	}
	for i, v := range infos {
		id[v] = len(atoms) + i
	}

	var b strings.Builder

	b.WriteString("Alphabet:\n")
	for player := 0; player < g.PlayerCount(); player++ {
		actions := g.Alphabet().Actions(player)
		toks := make([]string, len(actions))
		for i, a := range actions {
			toks[i] = a.String()
		}
		b.WriteString(strings.Join(toks, ","))
		b.WriteByte('\n')
	}

	b.WriteString("\nBase States:\n")
	for _, v := range atoms {
		fmt.Fprintf(&b, "%d=%s\n", id[v], v.Atom().String())
	}

	b.WriteString("\nKnowledge States:\n")
	for _, v := range infos {
		groupStrs := make([]string, v.PlayerCount())
		for p := 0; p < v.PlayerCount(); p++ {
			members := v.Group(p)
			memberIDs := make([]int, len(members))
			for i, m := range members {
				memberIDs[i] = id[m]
			}
			sort.Ints(memberIDs)
			strs := make([]string, len(memberIDs))
			for i, mid := range memberIDs {
				strs[i] = fmt.Sprintf("%d", mid)
			}
			groupStrs[p] = strings.Join(strs, ",")
		}
		fmt.Fprintf(&b, "%d=%s\n", id[v], strings.Join(groupStrs, "|"))
	}

	fmt.Fprintf(&b, "\nInitial State: %d\n", id[g.Initial()])

	b.WriteString("\nObservations:\n")
	for player := 0; player < g.PlayerCount(); player++ {
		blocks := make([]string, 0, len(g.Partitioning(player).Observations()))
		for _, obs := range g.Partitioning(player).Observations() {
			memberIDs := make([]int, 0, obs.Len())
			for _, s := range obs.States() {
				memberIDs = append(memberIDs, id[s])
			}
			sort.Ints(memberIDs)
			strs := make([]string, len(memberIDs))
			for i, mid := range memberIDs {
				strs[i] = fmt.Sprintf("%d", mid)
			}
			blocks = append(blocks, strings.Join(strs, ","))
		}
		b.WriteString(strings.Join(blocks, "|"))
		b.WriteByte('\n')
	}

	b.WriteString("\nTransitions:\n")
	for _, t := range g.Transitions() {
		toks := make([]string, len(t.Action))
		for i, a := range t.Action {
			toks[i] = a.String()
		}
		fmt.Fprintf(&b, "%d %s %d\n", id[t.From], strings.Join(toks, ","), id[t.To])
	}

	attrJSON, err := json.Marshal(g.Attributes())
	if err != nil {
		return err
	}
	fmt.Fprintf(&b, "\nAttributes: %s\n", attrJSON)

	_, err = io.WriteString(w, b.String())
	return err
}

// collectValues returns every value reachable from states, topologically
// ordered (a value's dependencies always precede it), split into base
// atoms and Info nodes.
func collectValues(states []kgraph.State) (atoms, infos []*kvalue.Value) {
	visited := map[*kvalue.Value]bool{}
	var visit func(v *kvalue.Value)
	visit = func(v *kvalue.Value) {
		if visited[v] {
			return
		}
		visited[v] = true
		if v.IsAtom() {
			atoms = append(atoms, v)
			return
		}
		for p := 0; p < v.PlayerCount(); p++ {
			for _, child := range v.Group(p) {
				visit(child)
			}
		}
		infos = append(infos, v)
	}
	for _, s := range states {
		visit(s)
	}
	return atoms, infos
}
