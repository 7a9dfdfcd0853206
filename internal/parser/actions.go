package parser

import (
	"strconv"
	"strings"

	"github.com/aleksaelezovic/turtlecore/internal/iri"
	"github.com/aleksaelezovic/turtlecore/internal/lex"
	"github.com/aleksaelezovic/turtlecore/internal/parsetable"
	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

// runAction dispatches one semantic action (component E) against the
// current parse state. Every action reads its operands off the value
// stack (pushed either by a just-matched terminal or by a completed
// non-terminal's own action) and, if it produces a value, pushes exactly
// one result back — the convention every production in
// internal/parsetable/grammar.go is written against.
func (s *state) runAction(act parsetable.ActionID) error {
	switch act {
	case parsetable.ActPrefixID, parsetable.ActSparqlPrefix:
		return s.bindPrefix()
	case parsetable.ActBase, parsetable.ActSparqlBase:
		return s.bindBase()
	case parsetable.ActTriplesSubjectReady:
		return s.actTriplesSubjectReady()
	case parsetable.ActTriplesEnd:
		_, err := s.popFrame()
		return err
	case parsetable.ActVerbA:
		f, err := s.topFrame()
		if err != nil {
			return err
		}
		f.predicate = rdf.RDFType
		return nil
	case parsetable.ActVerbIri:
		term, err := s.popTerm()
		if err != nil {
			return err
		}
		f, err := s.topFrame()
		if err != nil {
			return err
		}
		f.predicate = term
		return nil
	case parsetable.ActEmitObject:
		return s.actEmitObject()
	case parsetable.ActBlankNodePropertyListStart:
		s.pushFrame(s.build.AnonBlankNode())
		return nil
	case parsetable.ActBlankNodePropertyListEnd:
		f, err := s.popFrame()
		if err != nil {
			return err
		}
		s.pushValue(f.subject)
		return nil
	case parsetable.ActCollectionStart:
		s.pushCollection()
		return nil
	case parsetable.ActCollectionItem:
		return s.actCollectionItem()
	case parsetable.ActCollectionEnd:
		return s.actCollectionEnd()
	case parsetable.ActCollectionEmpty:
		s.pushValue(rdf.Term(rdf.RDFNil))
		return nil
	case parsetable.ActBlankNodeLabel:
		return s.actBlankNodeLabel()
	case parsetable.ActAnonBlankNode:
		s.pushValue(rdf.Term(s.build.AnonBlankNode()))
		return nil
	case parsetable.ActIriRef:
		return s.actIriRef()
	case parsetable.ActPrefixedName:
		return s.actPrefixedName()
	case parsetable.ActRDFLiteralBase:
		tok, err := s.popToken()
		if err != nil {
			return err
		}
		s.pushValue(pendingLiteral(tok.Lexeme))
		return nil
	case parsetable.ActLiteralSuffixLang:
		return s.actLiteralSuffixLang()
	case parsetable.ActLiteralSuffixType:
		return s.actLiteralSuffixType()
	case parsetable.ActLiteralSuffixPlain:
		pl, err := s.popPendingLiteral()
		if err != nil {
			return err
		}
		s.pushValue(rdf.Term(s.build.PlainLiteral(string(pl))))
		return nil
	case parsetable.ActNumericLiteral:
		return s.actNumericLiteral()
	case parsetable.ActBooleanLiteral:
		tok, err := s.popToken()
		if err != nil {
			return err
		}
		s.pushValue(rdf.Term(s.build.TypedLiteral(tok.Lexeme, rdf.XSDBoolean)))
		return nil
	case parsetable.ActNone:
		return nil
	default:
		return &InternalError{Detail: "unhandled action"}
	}
}

func (s *state) popPendingLiteral() (pendingLiteral, error) {
	v, err := s.popValue()
	if err != nil {
		return "", err
	}
	pl, ok := v.(pendingLiteral)
	if !ok {
		return "", &InternalError{Detail: "expected pending literal on value stack"}
	}
	return pl, nil
}

// bindPrefix implements both '@prefix' PNAME_NS IRIREF '.' and the SPARQL
// PREFIX PNAME_NS IRIREF form: the IRI (possibly relative to base) was
// pushed last, the PNAME_NS token just before it.
func (s *state) bindPrefix() error {
	irTok, err := s.popToken()
	if err != nil {
		return err
	}
	nsTok, err := s.popToken()
	if err != nil {
		return err
	}
	pv, ok := nsTok.Value.(lex.PrefixedValue)
	if !ok {
		return &InternalError{Detail: "expected PrefixedValue on PNAME_NS token"}
	}
	resolved, err := iri.Resolve(s.base, irTok.Lexeme, irTok.Line)
	if err != nil {
		return err
	}
	s.prefixes[pv.Prefix] = resolved
	return nil
}

// bindBase implements both '@base' IRIREF '.' and the SPARQL BASE IRIREF
// form: base is resolved against the *current* base, per Turtle 1.1's
// stacking rule for successive @base directives.
func (s *state) bindBase() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	resolved, err := iri.Resolve(s.base, tok.Lexeme, tok.Line)
	if err != nil {
		return err
	}
	s.base = resolved
	return nil
}

func (s *state) actTriplesSubjectReady() error {
	term, err := s.popTerm()
	if err != nil {
		return err
	}
	s.pushFrame(term)
	return nil
}

func (s *state) actEmitObject() error {
	term, err := s.popTerm()
	if err != nil {
		return err
	}
	f, err := s.topFrame()
	if err != nil {
		return err
	}
	return s.sink.Emit(f.subject, f.predicate, term)
}

func (s *state) actCollectionItem() error {
	term, err := s.popTerm()
	if err != nil {
		return err
	}
	c, err := s.topCollection()
	if err != nil {
		return err
	}
	c.items = append(c.items, term)
	return nil
}

// actCollectionEnd expands the accumulated items into the canonical
// rdf:first/rdf:rest chain terminated by rdf:nil (spec.md §4.5): N items
// mint N blank nodes and emit exactly 2N triples.
func (s *state) actCollectionEnd() error {
	c, err := s.popCollection()
	if err != nil {
		return err
	}
	if len(c.items) == 0 {
		s.pushValue(rdf.Term(rdf.RDFNil))
		return nil
	}
	nodes := make([]*rdf.BlankNode, len(c.items))
	for i := range nodes {
		nodes[i] = s.build.AnonBlankNode()
	}
	for i, item := range c.items {
		var rest rdf.Term = rdf.RDFNil
		if i+1 < len(nodes) {
			rest = nodes[i+1]
		}
		if err := s.sink.Emit(nodes[i], rdf.RDFFirst, item); err != nil {
			return err
		}
		if err := s.sink.Emit(nodes[i], rdf.RDFRest, rest); err != nil {
			return err
		}
	}
	s.pushValue(rdf.Term(nodes[0]))
	return nil
}

func (s *state) actBlankNodeLabel() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	s.pushValue(rdf.Term(s.build.NamedBlankNode(tok.Lexeme)))
	return nil
}

func (s *state) actIriRef() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	resolved, err := iri.Resolve(s.base, tok.Lexeme, tok.Line)
	if err != nil {
		return err
	}
	s.pushValue(rdf.Term(s.build.IRI(resolved)))
	return nil
}

func (s *state) actPrefixedName() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	pv, ok := tok.Value.(lex.PrefixedValue)
	if !ok {
		return &InternalError{Detail: "expected PrefixedValue on prefixed-name token"}
	}
	ns, err := s.resolvePrefix(pv.Prefix, tok.Line)
	if err != nil {
		return err
	}
	s.pushValue(rdf.Term(s.build.IRI(ns + pv.Local)))
	return nil
}

func (s *state) actLiteralSuffixLang() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	tag, ok := tok.Value.(lex.LangtagValue)
	if !ok {
		return &InternalError{Detail: "expected LangtagValue on LANGTAG token"}
	}
	pl, err := s.popPendingLiteral()
	if err != nil {
		return err
	}
	s.pushValue(rdf.Term(s.build.LangLiteral(string(pl), string(tag))))
	return nil
}

func (s *state) actLiteralSuffixType() error {
	term, err := s.popTerm()
	if err != nil {
		return err
	}
	datatype, ok := term.(*rdf.NamedNode)
	if !ok {
		return &InternalError{Detail: "expected NamedNode datatype after '^^'"}
	}
	pl, err := s.popPendingLiteral()
	if err != nil {
		return err
	}
	s.pushValue(rdf.Term(s.build.TypedLiteral(string(pl), datatype)))
	return nil
}

func (s *state) actNumericLiteral() error {
	tok, err := s.popToken()
	if err != nil {
		return err
	}
	var datatype *rdf.NamedNode
	lexeme := tok.Lexeme
	switch tok.Kind {
	case lex.Integer:
		datatype = rdf.XSDInteger
		if s.canonicalize {
			lexeme = canonicalInteger(lexeme)
		}
	case lex.Decimal:
		datatype = rdf.XSDDecimal
		if s.canonicalize {
			lexeme = canonicalDecimal(lexeme)
		}
	case lex.Double:
		datatype = rdf.XSDDouble
		if s.canonicalize {
			lexeme = canonicalDouble(lexeme)
		}
	default:
		return &InternalError{Detail: "unexpected token kind for numeric literal"}
	}
	s.pushValue(rdf.Term(s.build.TypedLiteral(lexeme, datatype)))
	return nil
}

// canonicalInteger strips a redundant leading '+' and leading zeros, per
// XSD's canonical integer form: no leading zeros, "0" for zero itself.
func canonicalInteger(lexeme string) string {
	neg := strings.HasPrefix(lexeme, "-")
	digits := strings.TrimPrefix(strings.TrimPrefix(lexeme, "-"), "+")
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	if neg && digits != "0" {
		return "-" + digits
	}
	return digits
}

// canonicalDecimal normalizes sign, leading zeros, and trailing fractional
// zeros, always keeping at least one digit on each side of the point.
func canonicalDecimal(lexeme string) string {
	neg := strings.HasPrefix(lexeme, "-")
	s2 := strings.TrimPrefix(strings.TrimPrefix(lexeme, "-"), "+")
	parts := strings.SplitN(s2, ".", 2)
	intPart := strings.TrimLeft(parts[0], "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart := ""
	if len(parts) > 1 {
		fracPart = strings.TrimRight(parts[1], "0")
	}
	if fracPart == "" {
		fracPart = "0"
	}
	if neg && !(intPart == "0" && fracPart == "0") {
		return "-" + intPart + "." + fracPart
	}
	return intPart + "." + fracPart
}

// canonicalDouble re-renders the mantissa/exponent through Go's float
// formatter. This covers the common cases but is not a complete
// implementation of XSD's canonical-double production (it does not, for
// instance, special-case INF/NaN, which Turtle's DOUBLE token cannot
// produce in the first place).
func canonicalDouble(lexeme string) string {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return lexeme
	}
	out := strconv.FormatFloat(f, 'E', -1, 64)
	if i := strings.IndexByte(out, 'E'); i >= 0 && !strings.Contains(out[:i], ".") {
		out = out[:i] + ".0" + out[i:]
	}
	return out
}
