package kvalue

import (
	"sort"
	"strconv"
	"strings"
)

// Verbose renders the value the way a person reading knowledge aloud
// would: "Player i knows: ... or ...", nested one level per iteration.
// Not recommended for deeply iterated games.
func (v *Value) Verbose() string {
	return v.verbose(0)
}

func (v *Value) verbose(level int) string {
	indent := strings.Repeat("\t", level)
	if v.isAtom {
		return indent + "we are in " + v.atom.String() + "\n"
	}
	var b strings.Builder
	for player, group := range v.groups {
		b.WriteString(indent)
		b.WriteString("Player ")
		b.WriteString(strconv.Itoa(player))
		b.WriteString(" knows:\n")
		parts := make([]string, len(group))
		for i, s := range group {
			parts[i] = s.verbose(level + 1)
		}
		b.WriteString(strings.Join(parts, indent+"\tor\n"))
	}
	return b.String()
}

// Nice renders a compact nested-set notation suitable for a graph node
// label: "{a, b, c}" for a single-player knowledge set, or one such set
// per player separated by newlines for a multi-player Info value.
func (v *Value) Nice() string {
	if v.isAtom {
		return v.atom.String()
	}
	if len(v.groups) == 1 {
		return niceSet(v.groups[0])
	}
	lines := make([]string, len(v.groups))
	for i, g := range v.groups {
		lines[i] = niceSet(g)
	}
	return strings.Join(lines, "\n")
}

func niceSet(group []*Value) string {
	parts := make([]string, len(group))
	for i, s := range group {
		if s.isAtom {
			parts[i] = s.atom.String()
		} else {
			parts[i] = s.Nice()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Isocheck renders the value's minimal consistent base: a comma-separated,
// sorted list of the base atoms compatible with this value. Two
// structurally different states with the same consistent base share an
// Isocheck rendering, which is exactly the point: it is a debugging and
// equivalence-profile aid, not a lossless representation.
func (v *Value) Isocheck() string {
	base := v.ConsistentBase()
	parts := make([]string, 0, len(base))
	for _, s := range base {
		parts = append(parts, s.atom.String())
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
