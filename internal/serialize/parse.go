// Package serialize reads and writes the line-oriented ".game" text
// format (§6.1): UTF-8, LF-terminated, blank-line-separated sections
// naming a game's alphabet, base states, knowledge states, initial
// state, observations, transitions, and free-form attributes.
package serialize

import (
	"bufio"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
	"github.com/HelmerNylen/mkbsc/internal/kvalue"
)

type section int

const (
	sectionNone section = iota
	sectionAlphabet
	sectionBaseStates
	sectionKnowledgeStates
	sectionObservations
	sectionTransitions
)

// Parse reads a game from its ".game" text representation.
func Parse(r io.Reader) (*kgraph.Game, error) {
	var (
		alphabetLines   [][]kvalue.Atom
		baseStates      = map[int]kvalue.Atom{}
		knowledgeStates = map[int][][]int{}
		initialID       = -1
		haveInitial     = false
		observationLines []string
		transitionLines []string
		attributesRaw   string
		haveAttributes  bool
		cur             section
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch {
		case trimmed == "Alphabet:":
			cur = sectionAlphabet
			continue
		case trimmed == "Base States:":
			cur = sectionBaseStates
			continue
		case trimmed == "Knowledge States:":
			cur = sectionKnowledgeStates
			continue
		case strings.HasPrefix(trimmed, "Initial State:"):
			idStr := strings.TrimSpace(strings.TrimPrefix(trimmed, "Initial State:"))
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return nil, &kerrors.ParseError{Line: lineNo, Reason: "invalid initial state id: " + idStr}
			}
			initialID = id
			haveInitial = true
			cur = sectionNone
			continue
		case trimmed == "Observations:":
			cur = sectionObservations
			continue
		case trimmed == "Transitions:":
			cur = sectionTransitions
			continue
		case strings.HasPrefix(trimmed, "Attributes:"):
			attributesRaw = strings.TrimSpace(strings.TrimPrefix(trimmed, "Attributes:"))
			haveAttributes = true
			cur = sectionNone
			continue
		}

		switch cur {
		case sectionAlphabet:
			atoms, err := parseAtomList(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			alphabetLines = append(alphabetLines, atoms)
		case sectionBaseStates:
			id, atom, err := parseBaseStateLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			baseStates[id] = atom
		case sectionKnowledgeStates:
			id, groups, err := parseKnowledgeStateLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			knowledgeStates[id] = groups
		case sectionObservations:
			observationLines = append(observationLines, trimmed)
		case sectionTransitions:
			transitionLines = append(transitionLines, trimmed)
		default:
			return nil, &kerrors.ParseError{Line: lineNo, Reason: "content line outside any section: " + trimmed}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveInitial {
		return nil, &kerrors.ParseError{Line: lineNo, Reason: "missing Initial State section"}
	}

	interner := kvalue.NewInterner()
	values := make(map[int]*kvalue.Value, len(baseStates)+len(knowledgeStates))

	baseIDs := sortedKeys(baseStates)
	for _, id := range baseIDs {
		values[id] = interner.Atom(baseStates[id])
	}

	knowledgeIDs := sortedKeys(knowledgeStates)
	for _, id := range knowledgeIDs {
		groupsIDs := knowledgeStates[id]
		groups := make([][]*kvalue.Value, len(groupsIDs))
		for p, ids := range groupsIDs {
			group := make([]*kvalue.Value, len(ids))
			for i, refID := range ids {
				v, ok := values[refID]
				if !ok {
					return nil, &kerrors.LookupError{What: "knowledge state reference", Key: strconv.Itoa(refID)}
				}
				group[i] = v
			}
			groups[p] = group
		}
		values[id] = interner.Info(groups...)
	}

	// The game's states are the values no knowledge state refers to: the
	// base atoms of a base game, or the outermost knowledge states of an
	// iterated one.
	referenced := map[int]bool{}
	for _, groupsIDs := range knowledgeStates {
		for _, ids := range groupsIDs {
			for _, refID := range ids {
				referenced[refID] = true
			}
		}
	}
	stateList := make([]kgraph.State, 0, len(values))
	for _, id := range append(append([]int{}, baseIDs...), knowledgeIDs...) {
		if !referenced[id] {
			stateList = append(stateList, values[id])
		}
	}

	initial, ok := values[initialID]
	if !ok {
		return nil, &kerrors.LookupError{What: "initial state", Key: strconv.Itoa(initialID)}
	}

	perPlayer := make([][]kvalue.Atom, len(alphabetLines))
	copy(perPlayer, alphabetLines)
	alphabet, err := kgraph.NewAlphabet(perPlayer...)
	if err != nil {
		return nil, err
	}

	var transitions []*kgraph.Transition
	for _, line := range transitionLines {
		t, err := parseTransitionLine(line, values)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	partitionings := make([]*kgraph.Partitioning, len(observationLines))
	for player, line := range observationLines {
		p, err := parseObservationLine(line, values)
		if err != nil {
			return nil, err
		}
		partitionings[player] = p
	}

	var attributes map[string]any
	if haveAttributes && attributesRaw != "" {
		if err := json.Unmarshal([]byte(attributesRaw), &attributes); err != nil {
			return nil, &kerrors.ParseError{Reason: "invalid Attributes JSON: " + err.Error()}
		}
	}

	return kgraph.NewGame(stateList, initial, alphabet, transitions, partitionings, kgraph.WithAttributes(attributes))
}

func parseAtomList(line string, lineNo int) ([]kvalue.Atom, error) {
	parts := strings.Split(line, ",")
	atoms := make([]kvalue.Atom, len(parts))
	for i, p := range parts {
		a, err := parseAtomToken(strings.TrimSpace(p))
		if err != nil {
			return nil, &kerrors.ParseError{Line: lineNo, Reason: err.Error()}
		}
		atoms[i] = a
	}
	return atoms, nil
}

func parseAtomToken(tok string) (kvalue.Atom, error) {
	if strings.HasPrefix(tok, "\"") {
		s, err := strconv.Unquote(tok)
		if err != nil {
			return kvalue.Atom{}, err
		}
		return kvalue.StringAtom(s), nil
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return kvalue.Atom{}, err
	}
	return kvalue.IntAtom(i), nil
}

func parseBaseStateLine(line string, lineNo int) (int, kvalue.Atom, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return 0, kvalue.Atom{}, &kerrors.ParseError{Line: lineNo, Reason: "expected <id>=<atom>, got: " + line}
	}
	id, err := strconv.Atoi(strings.TrimSpace(line[:eq]))
	if err != nil {
		return 0, kvalue.Atom{}, &kerrors.ParseError{Line: lineNo, Reason: "invalid base state id: " + line}
	}
	atom, err := parseAtomToken(strings.TrimSpace(line[eq+1:]))
	if err != nil {
		return 0, kvalue.Atom{}, &kerrors.ParseError{Line: lineNo, Reason: err.Error()}
	}
	return id, atom, nil
}

func parseKnowledgeStateLine(line string, lineNo int) (int, [][]int, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return 0, nil, &kerrors.ParseError{Line: lineNo, Reason: "expected <id>=<grp0>|<grp1>|..., got: " + line}
	}
	id, err := strconv.Atoi(strings.TrimSpace(line[:eq]))
	if err != nil {
		return 0, nil, &kerrors.ParseError{Line: lineNo, Reason: "invalid knowledge state id: " + line}
	}
	groupStrs := strings.Split(line[eq+1:], "|")
	groups := make([][]int, len(groupStrs))
	for p, g := range groupStrs {
		ids, err := parseIDList(g)
		if err != nil {
			return 0, nil, &kerrors.ParseError{Line: lineNo, Reason: err.Error()}
		}
		groups[p] = ids
	}
	return id, groups, nil
}

func parseIDList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseTransitionLine(line string, values map[int]*kvalue.Value) (*kgraph.Transition, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, &kerrors.ParseError{Reason: "expected '<from> <a0,a1,...> <to>', got: " + line}
	}
	fromID, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, &kerrors.ParseError{Reason: "invalid transition source id: " + fields[0]}
	}
	toID, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, &kerrors.ParseError{Reason: "invalid transition target id: " + fields[2]}
	}
	from, ok := values[fromID]
	if !ok {
		return nil, &kerrors.LookupError{What: "transition source", Key: fields[0]}
	}
	to, ok := values[toID]
	if !ok {
		return nil, &kerrors.LookupError{What: "transition target", Key: fields[2]}
	}
	actionToks := strings.Split(fields[1], ",")
	action := make(kgraph.JointAction, len(actionToks))
	for i, tok := range actionToks {
		a, err := parseAtomToken(strings.TrimSpace(tok))
		if err != nil {
			return nil, &kerrors.ParseError{Reason: err.Error()}
		}
		action[i] = a
	}
	return kgraph.NewTransition(from, action, to), nil
}

func parseObservationLine(line string, values map[int]*kvalue.Value) (*kgraph.Partitioning, error) {
	blocks := strings.Split(line, "|")
	observations := make([]*kgraph.Observation, 0, len(blocks))
	for _, block := range blocks {
		ids, err := parseIDList(block)
		if err != nil {
			return nil, &kerrors.ParseError{Reason: err.Error()}
		}
		states := make([]kgraph.State, len(ids))
		for i, id := range ids {
			s, ok := values[id]
			if !ok {
				return nil, &kerrors.LookupError{What: "observation member", Key: strconv.Itoa(id)}
			}
			states[i] = s
		}
		observations = append(observations, kgraph.NewObservation(states...))
	}
	return kgraph.NewPartitioning(observations...), nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
