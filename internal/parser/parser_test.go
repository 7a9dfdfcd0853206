package parser

import (
	"strings"
	"testing"

	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

func mustParse(t *testing.T, opts Options, doc string) *rdf.CollectingSink {
	t.Helper()
	sink := &rdf.CollectingSink{}
	if err := New(opts).Parse(strings.NewReader(doc), sink); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return sink
}

func TestPrefixAndTripleEmission(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:alice ex:knows ex:bob .
	`)
	if len(sink.Triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(sink.Triples))
	}
	tr := sink.Triples[0]
	if tr.Subject.(*rdf.NamedNode).IRI != "http://example.org/alice" {
		t.Fatalf("unexpected subject: %v", tr.Subject)
	}
	if tr.Predicate.(*rdf.NamedNode).IRI != "http://example.org/knows" {
		t.Fatalf("unexpected predicate: %v", tr.Predicate)
	}
	if tr.Object.(*rdf.NamedNode).IRI != "http://example.org/bob" {
		t.Fatalf("unexpected object: %v", tr.Object)
	}
}

func TestIntegerTypedLiteral(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:alice ex:age 42 .
	`)
	obj := sink.Triples[0].Object.(*rdf.Literal)
	if obj.Value != "42" || obj.Datatype.IRI != rdf.XSDInteger.IRI {
		t.Fatalf("unexpected integer literal: %+v", obj)
	}
}

func TestLanguageTaggedLiteralWithBase(t *testing.T) {
	sink := mustParse(t, Options{BaseURI: "http://example.org/"}, `
		<alice> <name> "Alice"@en .
	`)
	subj := sink.Triples[0].Subject.(*rdf.NamedNode)
	if subj.IRI != "http://example.org/alice" {
		t.Fatalf("base-relative IRI not resolved: %v", subj)
	}
	obj := sink.Triples[0].Object.(*rdf.Literal)
	if obj.Value != "Alice" || obj.Language != "en" {
		t.Fatalf("unexpected language literal: %+v", obj)
	}
}

func TestCollectionOfTwoEmitsFiveTriples(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:alice ex:likes ( ex:pizza ex:tea ) .
	`)
	// 1 head triple + 2 list cells x (first, rest) = 5.
	if len(sink.Triples) != 5 {
		t.Fatalf("expected 5 triples, got %d: %v", len(sink.Triples), sink.Triples)
	}
	// The list triples are emitted first; the head triple comes last.
	head := sink.Triples[len(sink.Triples)-1].Object.(*rdf.BlankNode)
	var firsts, rests int
	for _, tr := range sink.Triples {
		switch tr.Predicate.(*rdf.NamedNode).IRI {
		case rdf.RDFFirst.IRI:
			firsts++
		case rdf.RDFRest.IRI:
			rests++
		}
	}
	if firsts != 2 || rests != 2 {
		t.Fatalf("expected 2 first and 2 rest triples, got %d/%d", firsts, rests)
	}
	if head.ID == "" {
		t.Fatal("collection head must be a blank node")
	}
}

func TestBracketObjectMintsFreshBlankNode(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:alice ex:knows [ ex:name "someone" ] .
	`)
	if len(sink.Triples) != 2 {
		t.Fatalf("expected 2 triples, got %d", len(sink.Triples))
	}
	// The nested triple is emitted before the triple that references the
	// blank node as its object.
	bn, ok := sink.Triples[1].Object.(*rdf.BlankNode)
	if !ok {
		t.Fatalf("expected object to be a blank node, got %T", sink.Triples[1].Object)
	}
	if !sink.Triples[0].Subject.(*rdf.BlankNode).Equals(bn) {
		t.Fatal("the nested predicateObjectList must use the same fresh blank node as subject")
	}
}

func TestBlankNodePropertyListAsBareSubject(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		[ ex:name "someone" ] .
	`)
	if len(sink.Triples) != 1 {
		t.Fatalf("expected 1 triple, got %d: %v", len(sink.Triples), sink.Triples)
	}
	if _, ok := sink.Triples[0].Subject.(*rdf.BlankNode); !ok {
		t.Fatalf("expected a fresh blank node subject, got %T", sink.Triples[0].Subject)
	}
	if sink.Triples[0].Predicate.(*rdf.NamedNode).IRI != "http://example.org/name" {
		t.Fatalf("unexpected predicate: %v", sink.Triples[0].Predicate)
	}
}

func TestEmptyPrefixResolution(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix : <http://example.org/> .
		:alice :knows :bob .
	`)
	if sink.Triples[0].Subject.(*rdf.NamedNode).IRI != "http://example.org/alice" {
		t.Fatalf("empty-prefix name not resolved: %v", sink.Triples[0].Subject)
	}
}

func TestMissingTerminatorIsParseError(t *testing.T) {
	err := New(Options{}).Parse(strings.NewReader(`
		@prefix ex: <http://example.org/> .
		ex:alice ex:knows ex:bob
	`), &rdf.CollectingSink{})
	if err == nil {
		t.Fatal("expected an error for a missing '.'")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
}

func TestUndefinedPrefixIsFatal(t *testing.T) {
	err := New(Options{}).Parse(strings.NewReader(`
		ex:alice ex:knows ex:bob .
	`), &rdf.CollectingSink{})
	if err == nil {
		t.Fatal("expected an UndefinedPrefixError")
	}
	if _, ok := err.(*UndefinedPrefixError); !ok {
		t.Fatalf("expected *UndefinedPrefixError, got %T: %v", err, err)
	}
}

func TestBlankNodeLabelConsistencyWithinDocument(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		_:b1 ex:knows ex:alice .
		ex:bob ex:knows _:b1 .
	`)
	first := sink.Triples[0].Subject.(*rdf.BlankNode)
	second := sink.Triples[1].Object.(*rdf.BlankNode)
	if !first.Equals(second) {
		t.Fatalf("same blank node label must resolve to the same node: %v != %v", first, second)
	}
}

func TestVerbAIsRDFType(t *testing.T) {
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:alice a ex:Person .
	`)
	if sink.Triples[0].Predicate.(*rdf.NamedNode).IRI != rdf.RDFType.IRI {
		t.Fatalf("'a' must parse as rdf:type, got %v", sink.Triples[0].Predicate)
	}
}

func TestCanonicalizeOption(t *testing.T) {
	sink := mustParse(t, Options{Canonicalize: true}, `
		@prefix ex: <http://example.org/> .
		ex:alice ex:score 007 .
	`)
	if sink.Triples[0].Object.(*rdf.Literal).Value != "7" {
		t.Fatalf("expected canonicalized integer \"7\", got %q", sink.Triples[0].Object.(*rdf.Literal).Value)
	}
}

func TestNoForwardReferences(t *testing.T) {
	// Every triple must be emitted strictly after both its subject and
	// object terms are fully known; with a simple document this means
	// triples appear in the same order as their subjects in the text.
	sink := mustParse(t, Options{}, `
		@prefix ex: <http://example.org/> .
		ex:a ex:p ex:b .
		ex:c ex:p ex:d .
	`)
	if sink.Triples[0].Subject.(*rdf.NamedNode).IRI != "http://example.org/a" {
		t.Fatal("triples must be emitted in document order")
	}
	if sink.Triples[1].Subject.(*rdf.NamedNode).IRI != "http://example.org/c" {
		t.Fatal("triples must be emitted in document order")
	}
}
