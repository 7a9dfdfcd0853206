package parser

import (
	"github.com/aleksaelezovic/turtlecore/internal/lex"
	"github.com/aleksaelezovic/turtlecore/internal/parsetable"
)

// driver is the LL(1) stack machine (component D) spec.md §4.4 describes:
// a production_stack of grammar symbols, driven one lookahead token at a
// time against the table, with the value stack living on state.
type driver struct {
	lx    *lex.Lexer
	table *parsetable.Table
	st    *state
}

func newDriver(lx *lex.Lexer, table *parsetable.Table, st *state) *driver {
	return &driver{lx: lx, table: table, st: st}
}

// run executes turtleDoc to completion: every statement is parsed and its
// triples emitted before run returns.
func (d *driver) run() error {
	stack := []parsetable.Symbol{parsetable.N(parsetable.NTTurtleDoc)}

	for len(stack) > 0 {
		sym := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch sym.Kind {
		case parsetable.SymAction:
			if err := d.st.runAction(sym.Action); err != nil {
				return err
			}

		case parsetable.SymTerminal:
			tok, err := d.lx.Peek()
			if err != nil {
				return err
			}
			got, err := tokenToTerminal(tok)
			if err != nil {
				return err
			}
			if got != sym.Term {
				return d.errorAt(tok, []string{sym.Term.String()})
			}
			if _, err := d.lx.Next(); err != nil {
				return err
			}
			if isSemanticValue(tok.Value) {
				d.st.pushValue(tok)
			}

		case parsetable.SymNonTerminal:
			tok, err := d.lx.Peek()
			if err != nil {
				return err
			}
			term, err := tokenToTerminal(tok)
			if err != nil {
				return err
			}
			prod, _, ok := d.table.Lookup(sym.NT, term)
			switch {
			case ok:
				for i := len(prod.Body) - 1; i >= 0; i-- {
					stack = append(stack, prod.Body[i])
				}
			case d.table.Nullable(sym.NT) && d.table.InFollow(sym.NT, term):
				if act := d.table.EpsilonAction(sym.NT); act != parsetable.ActNone {
					if err := d.st.runAction(act); err != nil {
						return err
					}
				}
			default:
				return d.errorAt(tok, d.expectedFor(sym.NT))
			}
		}
	}

	tok, err := d.lx.Peek()
	if err != nil {
		return err
	}
	if tok.Kind != lex.EOF {
		return d.errorAt(tok, []string{"EOF"})
	}
	return nil
}

func (d *driver) errorAt(tok lex.Token, expected []string) error {
	return &ParseError{Expected: expected, Actual: tok, Line: tok.Line}
}

// expectedFor names every terminal under which nt has a production or is
// accepted empty, for ParseError's diagnostic message.
func (d *driver) expectedFor(nt parsetable.NonTerminal) []string {
	var names []string
	for term := parsetable.Terminal(0); term < parsetable.TermCaret2+1; term++ {
		if _, _, ok := d.table.Lookup(nt, term); ok {
			names = append(names, term.String())
		} else if d.table.Nullable(nt) && d.table.InFollow(nt, term) {
			names = append(names, term.String())
		}
	}
	return names
}

func isSemanticValue(v lex.Value) bool {
	_, none := v.(lex.NoneValue)
	return !none
}

// tokenToTerminal maps a scanned token to the finer-grained terminal
// identity the LL(1) table is indexed by: most lex.Kind values map to
// exactly one Terminal, but Keyword and Delimiter tokens are split by
// lexeme since the grammar needs that much to pick a production from one
// token of lookahead.
func tokenToTerminal(tok lex.Token) (parsetable.Terminal, error) {
	switch tok.Kind {
	case lex.EOF:
		return parsetable.TermEOF, nil
	case lex.IRIRef:
		return parsetable.TermIRIRef, nil
	case lex.PNameNS:
		return parsetable.TermPNameNS, nil
	case lex.PNameLN:
		return parsetable.TermPNameLN, nil
	case lex.BlankNodeLabel:
		return parsetable.TermBlankNodeLabel, nil
	case lex.LangTag:
		return parsetable.TermLangTag, nil
	case lex.Integer:
		return parsetable.TermInteger, nil
	case lex.Decimal:
		return parsetable.TermDecimal, nil
	case lex.Double:
		return parsetable.TermDouble, nil
	case lex.BooleanLiteral:
		return parsetable.TermBoolean, nil
	case lex.StringLiteral1:
		return parsetable.TermString1, nil
	case lex.StringLiteral2:
		return parsetable.TermString2, nil
	case lex.StringLiteralLong1:
		return parsetable.TermStringLong1, nil
	case lex.StringLiteralLong2:
		return parsetable.TermStringLong2, nil
	case lex.Nil:
		return parsetable.TermNil, nil
	case lex.Anon:
		return parsetable.TermAnon, nil
	case lex.Keyword:
		switch tok.Lexeme {
		case "a":
			return parsetable.TermKwA, nil
		case "@prefix":
			return parsetable.TermKwPrefixAt, nil
		case "@base":
			return parsetable.TermKwBaseAt, nil
		case "PREFIX":
			return parsetable.TermKwPrefix, nil
		case "BASE":
			return parsetable.TermKwBase, nil
		}
	case lex.Delimiter:
		switch tok.Lexeme {
		case ".":
			return parsetable.TermDot, nil
		case ",":
			return parsetable.TermComma, nil
		case ";":
			return parsetable.TermSemicolon, nil
		case "(":
			return parsetable.TermLParen, nil
		case ")":
			return parsetable.TermRParen, nil
		case "[":
			return parsetable.TermLBracket, nil
		case "]":
			return parsetable.TermRBracket, nil
		case "^^":
			return parsetable.TermCaret2, nil
		}
	}
	return 0, &InternalError{Detail: "unrecognized token kind/lexeme: " + tok.String()}
}
