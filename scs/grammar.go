package scs

import (
	"sort"
	"strconv"
	"strings"
)

// The script grammar. Terminals are the token class letters plus literal
// punctuators; ETX terminates the input, STX names the augmented start.
//
//	S -> iTS | i{B}S | iS | BS | e
//	T -> VT | V | N
//	B -> EoE
//	V -> E | (A) | {M}
//	N -> {S}
//	E -> n | s | v | b
//	A -> E | A,E | AE
//	M -> V,M | VM | V, | V
//
// The canonical LR(1) automaton is computed from these productions at init.
// Production order is load-bearing: the reducer's semantic actions are tied
// to the indices below.

const (
	symSTX = rune(0x02)
	symETX = rune(0x03)
)

type production struct {
	lhs rune
	rhs string
}

var grammar = []production{
	{symSTX, "S"},  // 0
	{'S', "iTS"},   // 1
	{'S', "i{B}S"}, // 2
	{'S', "iS"},    // 3
	{'S', ""},      // 4
	{'T', "VT"},    // 5
	{'T', "V"},     // 6
	{'T', "N"},     // 7
	{'B', "EoE"},   // 8
	{'V', "E"},     // 9
	{'V', "(A)"},   // 10
	{'V', "{M}"},   // 11
	{'N', "{S}"},   // 12
	{'E', "n"},     // 13
	{'E', "s"},     // 14
	{'E', "v"},     // 15
	{'E', "b"},     // 16
	{'A', "E"},     // 17
	{'A', "A,E"},   // 18
	{'A', "AE"},    // 19
	{'M', "V,M"},   // 20
	{'M', "VM"},    // 21
	{'M', "V,"},    // 22
	{'M', "V"},     // 23
	{'S', "BS"},    // 24
}

func isNonterminal(sym rune) bool {
	switch sym {
	case 'S', 'T', 'B', 'V', 'N', 'E', 'A', 'M', symSTX:
		return true
	}
	return false
}

// lrState is the published per-state table: a shift map, a reduce map in
// which key 0 is the default reduction for any unlisted terminal, a goto
// map for nonterminals, an accept flag and an expectation message.
type lrState struct {
	shifts  map[rune]int
	reduces map[rune]int
	gotos   map[rune]int
	accept  bool
	message string
}

var lrStates []lrState

// --- construction ---

type lrItem struct {
	prod int
	dot  int
	la   rune
}

func (it lrItem) key() string {
	return strconv.Itoa(it.prod) + ":" + strconv.Itoa(it.dot) + ":" + string(it.la)
}

type itemSet map[string]lrItem

func (s itemSet) canonical() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// firstSets maps each nonterminal to its terminal first set; only S is
// nullable in this grammar.
func firstSets() (first map[rune]map[rune]bool, nullable map[rune]bool) {
	first = map[rune]map[rune]bool{}
	nullable = map[rune]bool{}
	for _, p := range grammar {
		if first[p.lhs] == nil {
			first[p.lhs] = map[rune]bool{}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range grammar {
			allNullable := true
			for _, sym := range p.rhs {
				if !isNonterminal(sym) {
					if !first[p.lhs][sym] {
						first[p.lhs][sym] = true
						changed = true
					}
					allNullable = false
					break
				}
				for t := range first[sym] {
					if !first[p.lhs][t] {
						first[p.lhs][t] = true
						changed = true
					}
				}
				if !nullable[sym] {
					allNullable = false
					break
				}
			}
			if allNullable && !nullable[p.lhs] {
				nullable[p.lhs] = true
				changed = true
			}
		}
	}
	return
}

// firstOfString computes FIRST of a symbol string followed by lookahead la.
func firstOfString(first map[rune]map[rune]bool, nullable map[rune]bool, syms string, la rune) []rune {
	set := map[rune]bool{}
	all := true
	for _, sym := range syms {
		if !isNonterminal(sym) {
			set[sym] = true
			all = false
			break
		}
		for t := range first[sym] {
			set[t] = true
		}
		if !nullable[sym] {
			all = false
			break
		}
	}
	if all {
		set[la] = true
	}
	out := make([]rune, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func closure(first map[rune]map[rune]bool, nullable map[rune]bool, items itemSet) itemSet {
	work := make([]lrItem, 0, len(items))
	for _, it := range items {
		work = append(work, it)
	}
	sort.Slice(work, func(i, j int) bool { return work[i].key() < work[j].key() })
	for len(work) > 0 {
		it := work[0]
		work = work[1:]
		rhs := grammar[it.prod].rhs
		if it.dot >= len(rhs) {
			continue
		}
		next := rune(rhs[it.dot])
		if !isNonterminal(next) {
			continue
		}
		beta := rhs[it.dot+1:]
		for pi, p := range grammar {
			if p.lhs != next {
				continue
			}
			for _, la := range firstOfString(first, nullable, beta, it.la) {
				cand := lrItem{prod: pi, dot: 0, la: la}
				if _, ok := items[cand.key()]; !ok {
					items[cand.key()] = cand
					work = append(work, cand)
				}
			}
		}
	}
	return items
}

func buildLRTables() []lrState {
	first, nullable := firstSets()

	start := closure(first, nullable, itemSet{
		(lrItem{prod: 0, dot: 0, la: symETX}).key(): {prod: 0, dot: 0, la: symETX},
	})

	states := []itemSet{start}
	index := map[string]int{start.canonical(): 0}
	type pending struct{ state int }
	queue := []pending{{0}}

	transitions := []map[rune]int{{}}

	for len(queue) > 0 {
		cur := queue[0].state
		queue = queue[1:]

		// Collect transition symbols deterministically.
		symSet := map[rune]bool{}
		for _, it := range states[cur] {
			rhs := grammar[it.prod].rhs
			if it.dot < len(rhs) {
				symSet[rune(rhs[it.dot])] = true
			}
		}
		syms := make([]rune, 0, len(symSet))
		for s := range symSet {
			syms = append(syms, s)
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

		for _, sym := range syms {
			moved := itemSet{}
			for _, it := range states[cur] {
				rhs := grammar[it.prod].rhs
				if it.dot < len(rhs) && rune(rhs[it.dot]) == sym {
					ni := lrItem{prod: it.prod, dot: it.dot + 1, la: it.la}
					moved[ni.key()] = ni
				}
			}
			moved = closure(first, nullable, moved)
			key := moved.canonical()
			target, ok := index[key]
			if !ok {
				target = len(states)
				states = append(states, moved)
				index[key] = target
				transitions = append(transitions, map[rune]int{})
				queue = append(queue, pending{target})
			}
			transitions[cur][sym] = target
		}
	}

	out := make([]lrState, len(states))
	for si, set := range states {
		st := lrState{
			shifts:  map[rune]int{},
			reduces: map[rune]int{},
			gotos:   map[rune]int{},
		}
		for sym, target := range transitions[si] {
			if isNonterminal(sym) {
				st.gotos[sym] = target
			} else {
				st.shifts[sym] = target
			}
		}
		for _, it := range set {
			if it.dot < len(grammar[it.prod].rhs) {
				continue
			}
			if it.prod == 0 {
				st.accept = true
				continue
			}
			if _, shifted := st.shifts[it.la]; shifted {
				continue // shift preference, the Bison default
			}
			if prev, ok := st.reduces[it.la]; !ok || it.prod < prev {
				st.reduces[it.la] = it.prod
			}
		}
		st.message = expectationMessage(st)
		compressDefaultReduce(&st)
		out[si] = st
	}
	return out
}

// expectationMessage names the terminals the state can consume.
func expectationMessage(st lrState) string {
	seen := map[rune]bool{}
	for t := range st.shifts {
		seen[t] = true
	}
	for t := range st.reduces {
		seen[t] = true
	}
	var names []string
	for t := range seen {
		names = append(names, describeTerminal(t))
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "no input accepted here"
	}
	return "expected " + strings.Join(names, ", ")
}

func describeTerminal(t rune) string {
	switch t {
	case 'i':
		return "identifier"
	case 'v':
		return "variable"
	case 'o':
		return "operator"
	case 'n':
		return "number"
	case 's':
		return "string"
	case 'b':
		return "boolean"
	case symETX:
		return "end of input"
	default:
		return "'" + string(t) + "'"
	}
}

// compressDefaultReduce folds a state whose reduce entries all share one
// production into the 0x00 default-reduction slot.
func compressDefaultReduce(st *lrState) {
	if len(st.reduces) < 2 {
		return
	}
	var prod = -1
	for _, p := range st.reduces {
		if prod == -1 {
			prod = p
		} else if p != prod {
			return
		}
	}
	st.reduces = map[rune]int{0: prod}
}

func init() {
	lrStates = buildLRTables()
}
