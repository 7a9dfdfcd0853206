package parser

import (
	"github.com/aleksaelezovic/turtlecore/internal/builder"
	"github.com/aleksaelezovic/turtlecore/internal/lex"
	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

// frame holds the subject (and, once a verb has been parsed, the
// predicate) in scope for the predicateObjectList currently being parsed.
// A stack of these, rather than one pair of scalars, is what lets a
// blankNodePropertyList nested inside an object position parse its own
// predicateObjectList without corrupting the enclosing statement's
// in-progress predicate (spec.md §4.6 invariant: nesting is not bounded).
type frame struct {
	subject   rdf.Term
	predicate rdf.Term
}

// collFrame accumulates the object terms of one collection in document
// order, to be expanded into a first/rest chain once the closing ')' is
// seen and the total count is known.
type collFrame struct {
	items []rdf.Term
}

// pendingLiteral is the in-progress result of RDFLiteral's base string,
// stashed on the value stack until literalSuffix resolves it into a
// plain, language-tagged, or typed rdf.Literal.
type pendingLiteral string

// state is all per-parse mutable state threaded through the driver and
// the semantic actions: lexical context (base IRI, prefix bindings), the
// term factory, the emission target, and the two auxiliary stacks above.
// It is unexported; callers only ever see the public Parser.
type state struct {
	base         string
	prefixes     map[string]string
	sink         rdf.Sink
	build        *builder.Builder
	canonicalize bool

	frames      []frame
	collections []collFrame

	// values is the semantic value stack (spec.md §4.4's value_stack):
	// completed rdf.Term results and, transiently, pendingLiteral and
	// lex.Token values consumed by an action.
	values []interface{}
}

func newState(base string, prefixes map[string]string, sink rdf.Sink, build *builder.Builder, canonicalize bool) *state {
	p := make(map[string]string, len(prefixes))
	for k, v := range prefixes {
		p[k] = v
	}
	return &state{base: base, prefixes: p, sink: sink, build: build, canonicalize: canonicalize}
}

func (s *state) pushValue(v interface{}) { s.values = append(s.values, v) }

func (s *state) popValue() (interface{}, error) {
	if len(s.values) == 0 {
		return nil, &InternalError{Detail: "value stack underflow"}
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func (s *state) popTerm() (rdf.Term, error) {
	v, err := s.popValue()
	if err != nil {
		return nil, err
	}
	term, ok := v.(rdf.Term)
	if !ok {
		return nil, &InternalError{Detail: "expected rdf.Term on value stack"}
	}
	return term, nil
}

func (s *state) popToken() (lex.Token, error) {
	v, err := s.popValue()
	if err != nil {
		return lex.Token{}, err
	}
	tok, ok := v.(lex.Token)
	if !ok {
		return lex.Token{}, &InternalError{Detail: "expected lex.Token on value stack"}
	}
	return tok, nil
}

func (s *state) pushFrame(subject rdf.Term) {
	s.frames = append(s.frames, frame{subject: subject})
}

func (s *state) popFrame() (frame, error) {
	if len(s.frames) == 0 {
		return frame{}, &InternalError{Detail: "frame stack underflow"}
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, nil
}

func (s *state) topFrame() (*frame, error) {
	if len(s.frames) == 0 {
		return nil, &InternalError{Detail: "no active subject frame"}
	}
	return &s.frames[len(s.frames)-1], nil
}

func (s *state) pushCollection() {
	s.collections = append(s.collections, collFrame{})
}

func (s *state) popCollection() (collFrame, error) {
	if len(s.collections) == 0 {
		return collFrame{}, &InternalError{Detail: "collection stack underflow"}
	}
	c := s.collections[len(s.collections)-1]
	s.collections = s.collections[:len(s.collections)-1]
	return c, nil
}

func (s *state) topCollection() (*collFrame, error) {
	if len(s.collections) == 0 {
		return nil, &InternalError{Detail: "no active collection"}
	}
	return &s.collections[len(s.collections)-1], nil
}

func (s *state) resolvePrefix(prefix string, line int) (string, error) {
	ns, ok := s.prefixes[prefix]
	if !ok {
		return "", &UndefinedPrefixError{Prefix: prefix, Line: line}
	}
	return ns, nil
}
