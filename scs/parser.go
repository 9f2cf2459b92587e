package scs

import (
	"strconv"
)

// Parser drives the LR(1) tables over a token stream and assembles the
// typed tree. A fresh Parser is cheap; the tables are shared, compiled once
// at package load.
type Parser struct {
	lexer *Lexer
}

// NewParser creates a parser with its own lexer.
func NewParser() *Parser { return &Parser{lexer: NewLexer()} }

// AddVariables registers variable names with the underlying lexer.
func (p *Parser) AddVariables(names ...string) { p.lexer.AddVariables(names...) }

// ParseString tokenises and parses a complete script.
func (p *Parser) ParseString(src string) (*Table, error) {
	tokens, err := p.lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse runs the shift-reduce automaton over the tokens.
func (p *Parser) Parse(tokens []Token) (*Table, error) {
	type action int
	const (
		actAccept action = iota
		actShift
		actReduce
		actGoto
		actError
	)

	getNewState := func(state int, sym rune) (action, int) {
		st := &lrStates[state]
		if st.accept {
			return actAccept, -1
		}
		if next, ok := st.shifts[sym]; ok {
			return actShift, next
		}
		if prod, ok := st.reduces[sym]; ok {
			return actReduce, prod
		}
		if next, ok := st.gotos[sym]; ok {
			return actGoto, next
		}
		if prod, ok := st.reduces[0]; ok {
			return actReduce, prod
		}
		return actError, -1
	}

	// Parsing stacks.
	stateStack := []int{0}
	symbolStack := []rune{symSTX}

	// Semantic stacks: keyed records under construction, finished values,
	// and the expression buffer accumulating the value being read.
	var ktStack []KeyValue
	var subTableTemp []KeyValue
	var valueStack []Value
	exprBuf := Value{}

	pos := 0 // index into tokens; len(tokens) stands for ETX
	var prevTok Token

	curSym := func() rune {
		if pos < len(tokens) {
			return tokens[pos].symbol()
		}
		return symETX
	}
	curPos := func() Position {
		if pos < len(tokens) {
			return tokens[pos].Pos
		}
		if len(tokens) > 0 {
			return tokens[len(tokens)-1].Pos
		}
		return Position{1, 1}
	}
	syntaxError := func(state int, at Position, msg string) error {
		if msg == "" {
			msg = lrStates[state].message
		}
		return &SyntaxError{State: state, Pos: at, Msg: msg}
	}

	for {
		state := stateStack[len(stateStack)-1]
		sym := curSym()
		act, target := getNewState(state, sym)

		switch act {
		case actAccept:
			logf(2, "accepted")
			return makeTable(&subTableTemp), nil

		case actShift:
			stateStack = append(stateStack, target)
			symbolStack = append(symbolStack, sym)
			if pos < len(tokens) {
				prevTok = tokens[pos]
				pos++
			}

			switch sym {
			case 'i':
				ktStack = append(ktStack, KeyValue{Key: prevTok.Value})
			case 'o':
				exprBuf.Items = append(exprBuf.Items, prevTok.Value)
			}
			logf(2, "shift state %d symbol %q -> %d", state, sym, target)

		case actReduce:
			prod := grammar[target]
			n := len(prod.rhs)
			stateStack = stateStack[:len(stateStack)-n]
			symbolStack = symbolStack[:len(symbolStack)-n]
			symbolStack = append(symbolStack, prod.lhs)

			if err := p.reduceAction(target, &ktStack, &subTableTemp, &valueStack, &exprBuf, prevTok, state); err != nil {
				return nil, err
			}

			state = stateStack[len(stateStack)-1]
			act2, next := getNewState(state, prod.lhs)
			if act2 == actError || (act2 != actGoto && act2 != actShift) {
				return nil, syntaxError(state, curPos(), "")
			}
			stateStack = append(stateStack, next)
			logf(2, "reduce %c -> %s, goto %d", prod.lhs, prod.rhs, next)

		default:
			return nil, syntaxError(state, curPos(), "")
		}
	}
}

// reduceAction applies the semantic action tied to the production index.
func (p *Parser) reduceAction(prod int, ktStack, subTableTemp *[]KeyValue, valueStack *[]Value, exprBuf *Value, prevTok Token, state int) error {
	popKT := func() KeyValue {
		kv := (*ktStack)[len(*ktStack)-1]
		*ktStack = (*ktStack)[:len(*ktStack)-1]
		return kv
	}
	topKT := func() *KeyValue { return &(*ktStack)[len(*ktStack)-1] }
	popValue := func() Value {
		v := (*valueStack)[len(*valueStack)-1]
		*valueStack = (*valueStack)[:len(*valueStack)-1]
		return v
	}

	checkElemKind := func(kind ValueKind) error {
		// A variable reference in the buffer belongs to a directive
		// expression, which is typed by its operator instead.
		if exprBuf.isVariable {
			return nil
		}
		if exprBuf.Elem != None && exprBuf.Elem != kind {
			return &SyntaxError{
				State: state,
				Pos:   prevTok.Pos,
				Msg: "deduced conflicting types ('" + exprBuf.Elem.String() +
					"' vs '" + kind.String() + "') for array element type",
			}
		}
		return nil
	}

	switch prod {
	case 1, 2, 3: // S -> iTS | i{B}S | iS: the record is complete
		*subTableTemp = append(*subTableTemp, popKT())

	case 5, 6: // T -> VT | V: prepend the finished value to the record
		v := popValue()
		kv := topKT()
		kv.Values = append([]Value{v}, kv.Values...)

	case 8: // B -> EoE: the .se log-level directive
		p.applyDirective(*exprBuf)
		*exprBuf = Value{}

	case 9: // V -> E: scalar value complete
		*valueStack = append(*valueStack, *exprBuf)
		*exprBuf = Value{}

	case 10: // V -> (A): array value complete
		exprBuf.Kind = ArrayValue
		*valueStack = append(*valueStack, *exprBuf)
		*exprBuf = Value{}

	case 11: // V -> {M}: matrix value complete
		exprBuf.Kind = MatrixValue
		*valueStack = append(*valueStack, *exprBuf)
		*exprBuf = Value{}

	case 12: // N -> {S}: close the child table
		topKT().Sub = makeTable(subTableTemp)

	case 13: // E -> n
		if err := checkElemKind(NumberValue); err != nil {
			return err
		}
		exprBuf.Kind = NumberValue
		exprBuf.Elem = NumberValue
		exprBuf.Items = append(exprBuf.Items, prevTok.Value)
		exprBuf.Base = prevTok.Base
		exprBuf.Pos = prevTok.Pos

	case 14: // E -> s
		if err := checkElemKind(StringValue); err != nil {
			return err
		}
		exprBuf.Kind = StringValue
		exprBuf.Elem = StringValue
		exprBuf.Items = append(exprBuf.Items, prevTok.Value)
		exprBuf.Pos = prevTok.Pos

	case 15: // E -> v: a registered variable reference
		exprBuf.Kind = StringValue
		exprBuf.Elem = StringValue
		exprBuf.isVariable = true
		exprBuf.Items = append(exprBuf.Items, prevTok.Value)
		exprBuf.Pos = prevTok.Pos

	case 16: // E -> b
		if err := checkElemKind(BooleanValue); err != nil {
			return err
		}
		exprBuf.Kind = BooleanValue
		exprBuf.Elem = BooleanValue
		exprBuf.Items = append(exprBuf.Items, prevTok.Value)
		exprBuf.Pos = prevTok.Pos

	case 20, 21, 22, 23: // M reductions: fold the top value into the matrix
		shiftSubMatrix(exprBuf)
		v := popValue()
		if v.Kind == ArrayValue || v.Kind == MatrixValue {
			if exprBuf.Sub == nil {
				exprBuf.Sub = map[int]*Value{}
			}
			nested := v
			exprBuf.Sub[0] = &nested
		} else {
			exprBuf.Items = append([]string{v.Items[0]}, exprBuf.Items...)
			if exprBuf.Elem == None {
				exprBuf.Elem = v.Elem
			}
			if exprBuf.Base == 0 {
				exprBuf.Base = v.Base
			}
		}
	}
	return nil
}

// shiftSubMatrix moves every nested-row marker one item forward, keeping
// the row-start indices aligned as outer items are prepended.
func shiftSubMatrix(v *Value) {
	if v.Sub == nil {
		return
	}
	shifted := make(map[int]*Value, len(v.Sub))
	for idx, sub := range v.Sub {
		shifted[idx+1] = sub
	}
	v.Sub = shifted
}

// applyDirective interprets a reduced B -> EoE expression. The only
// recognised form is "LogLevel == <integer>", which clamps the catalogue
// debug verbosity; anything else is logged and dropped.
func (p *Parser) applyDirective(expr Value) {
	if len(expr.Items) != 3 {
		return
	}
	lhs, op, rhs := expr.Items[0], expr.Items[1], expr.Items[2]
	if lhs == "LogLevel" && op == "==" {
		if lvl, err := strconv.Atoi(rhs); err == nil {
			logf(1, "log level set to %d", lvl)
			clampLogLevel(lvl)
			return
		}
	}
	logf(1, "ignoring directive %s %s %s", lhs, op, rhs)
}

// makeTable drains the record accumulator into a table, restoring source
// order.
func makeTable(acc *[]KeyValue) *Table {
	t := &Table{}
	for i := len(*acc) - 1; i >= 0; i-- {
		t.Entries = append(t.Entries, (*acc)[i])
	}
	*acc = nil
	return t
}
