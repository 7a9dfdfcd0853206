// Package parser is the driver and semantic actions (components D and E)
// that turn a token stream into emitted triples, plus the public engine
// entry point spec.md §6 calls the parser's Options.
package parser

import (
	"fmt"
	"io"
	"sync"

	"github.com/aleksaelezovic/turtlecore/internal/builder"
	"github.com/aleksaelezovic/turtlecore/internal/interning"
	"github.com/aleksaelezovic/turtlecore/internal/lex"
	"github.com/aleksaelezovic/turtlecore/internal/parsetable"
	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

// Options configures one parse. The zero value is usable: no base IRI (any
// relative reference is then fatal), no prefix bindings, in-memory
// interning, literals kept in their original lexical form.
type Options struct {
	// BaseURI seeds the initial base IRI (spec.md §3's in-scope base),
	// overridden by any @base/BASE directive encountered while parsing.
	BaseURI string

	// Prefixes seeds initial prefix bindings, as if each had appeared in
	// an @prefix directive before the first statement. A directive for
	// the same prefix later in the document overrides it.
	Prefixes map[string]string

	// Validate, when true, is reserved for promoting non-fatal warnings
	// to errors. This implementation has no warning-level diagnostic
	// (every malformed-input condition it detects is already fatal), so
	// Validate is currently accepted but has no observable effect; see
	// DESIGN.md for the decision record.
	Validate bool

	// Canonicalize rewrites INTEGER/DECIMAL/DOUBLE lexical forms to an
	// XSD-canonical-like form before they are stored (internal/parser's
	// canonicalInteger/canonicalDecimal/canonicalDouble). Off by default:
	// the raw lexical form is preserved, matching the grammar's own
	// wording that these are distinct lexical forms of one value space.
	Canonicalize bool

	// DiskInterningDir, when non-empty, backs term interning with a
	// Badger database rooted at this directory instead of an in-memory
	// map, for documents too large to intern comfortably in RAM. The
	// keyspace is wiped when the parse completes (see internal/interning
	// BadgerInterner.Close).
	DiskInterningDir string
}

// Parser parses Turtle documents under one fixed Options value. It holds
// no per-document state itself; Parse is safe to call repeatedly, and
// concurrently, from one Parser value when DiskInterningDir is empty. With
// DiskInterningDir set, every Parse opens a database in that same
// directory and drops its contents when done, so overlapping calls are
// not supported.
type Parser struct {
	opts Options
}

// New constructs a Parser. opts.Prefixes is copied; later mutation of the
// caller's map has no effect on an already-constructed Parser.
func New(opts Options) *Parser {
	prefixes := make(map[string]string, len(opts.Prefixes))
	for k, v := range opts.Prefixes {
		prefixes[k] = v
	}
	opts.Prefixes = prefixes
	return &Parser{opts: opts}
}

var (
	tableOnce sync.Once
	table     *parsetable.Table
)

func sharedTable() *parsetable.Table {
	tableOnce.Do(func() { table = parsetable.New() })
	return table
}

// Parse reads one Turtle document from r and emits every triple it
// materializes to sink, in document order, stopping at the first error
// (lexical, syntactic, or an error sink.Emit itself returns).
func (p *Parser) Parse(r io.Reader, sink rdf.Sink) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("parser: read input: %w", err)
	}

	lx, err := lex.New(string(data))
	if err != nil {
		return err
	}

	intern, err := p.newInterner()
	if err != nil {
		return err
	}
	build := builder.New(intern)
	defer build.Close()

	st := newState(p.opts.BaseURI, p.opts.Prefixes, sink, build, p.opts.Canonicalize)
	d := newDriver(lx, sharedTable(), st)
	return d.run()
}

func (p *Parser) newInterner() (interning.Interner, error) {
	if p.opts.DiskInterningDir == "" {
		return interning.NewMemInterner(), nil
	}
	bi, err := interning.NewBadgerInterner(p.opts.DiskInterningDir)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return bi, nil
}
