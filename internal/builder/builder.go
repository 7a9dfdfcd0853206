// Package builder is the thin façade over the RDF term library spec.md
// §4.6 fixes as component F's contract: it mints IRIs, blank nodes, and
// literals, and does no I/O beyond what the interning layer does for
// deduplication. It never fails except via the numeric-escape surrogate
// check, which runs earlier in internal/escape.
package builder

import (
	"fmt"

	"github.com/aleksaelezovic/turtlecore/internal/interning"
	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

// Builder mints RDF terms, deduplicating IRI and blank-node strings
// through an Interner.
type Builder struct {
	intern      interning.Interner
	bnodeMap    map[string]*rdf.BlankNode
	anonCounter int
}

// New constructs a Builder backed by intern. Pass interning.NewMemInterner()
// for the default in-memory behavior.
func New(intern interning.Interner) *Builder {
	return &Builder{intern: intern, bnodeMap: make(map[string]*rdf.BlankNode)}
}

// IRI mints an absolute IRI term. The caller is responsible for resolving
// relative references before calling IRI.
func (b *Builder) IRI(absolute string) *rdf.NamedNode {
	return rdf.NewNamedNode(b.intern.Intern(absolute))
}

// NamedBlankNode returns the BlankNode minted for user label, minting one
// on first sight so every later occurrence of the same label within this
// parse resolves to the same node (invariant 2 in spec.md §3).
func (b *Builder) NamedBlankNode(label string) *rdf.BlankNode {
	if existing, ok := b.bnodeMap[label]; ok {
		return existing
	}
	n := rdf.NewBlankNode(b.intern.Intern(fmt.Sprintf("l%s", label)))
	b.bnodeMap[label] = n
	return n
}

// AnonBlankNode mints a fresh blank node from the monotonic anon counter,
// used for "[]", "[ ... ]", and collection-element nodes. The counter is
// never exposed to callers.
func (b *Builder) AnonBlankNode() *rdf.BlankNode {
	b.anonCounter++
	return rdf.NewBlankNode(fmt.Sprintf("b%d", b.anonCounter))
}

// PlainLiteral mints a literal with no datatype or language.
func (b *Builder) PlainLiteral(value string) *rdf.Literal {
	return rdf.NewLiteral(b.intern.Intern(value))
}

// TypedLiteral mints a literal carrying the given datatype IRI.
func (b *Builder) TypedLiteral(value string, datatype *rdf.NamedNode) *rdf.Literal {
	return rdf.NewLiteralWithDatatype(b.intern.Intern(value), datatype)
}

// LangLiteral mints a language-tagged literal.
func (b *Builder) LangLiteral(value, tag string) *rdf.Literal {
	return rdf.NewLiteralWithLanguage(b.intern.Intern(value), tag)
}

// Close releases the underlying interner, e.g. dropping a disk-backed
// keyspace at the end of a parse.
func (b *Builder) Close() error {
	return b.intern.Close()
}
