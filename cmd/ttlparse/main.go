// Command ttlparse reads a Turtle 1.1 document and writes canonical
// N-Triples to stdout, exercising the engine (internal/parser) from the
// command line. Grounded on the teacher's cmd/trigo entry point: manual
// flag parsing, no CLI framework, stdlib log for fatal errors only at the
// process boundary.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aleksaelezovic/turtlecore/internal/parser"
	"github.com/aleksaelezovic/turtlecore/pkg/rdf"
)

// prefixFlag collects repeated "-prefix name=iri" flags into a map.
type prefixFlag map[string]string

func (p prefixFlag) String() string { return "" }

func (p prefixFlag) Set(s string) error {
	name, iri, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected name=iri, got %q", s)
	}
	p[name] = iri
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ttlparse: ")

	base := flag.String("base", "", "base IRI for resolving relative references")
	validate := flag.Bool("validate", false, "treat warnings as fatal (reserved, see Options.Validate)")
	canonicalize := flag.Bool("canonicalize", false, "rewrite numeric literals to XSD canonical form")
	diskIntern := flag.String("intern-dir", "", "directory for disk-backed term interning (default: in-memory)")
	prefixes := make(prefixFlag)
	flag.Var(prefixes, "prefix", "seed a prefix binding as name=iri (repeatable)")
	flag.Parse()

	var input *os.File
	switch flag.NArg() {
	case 0:
		input = os.Stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("open %s: %v", flag.Arg(0), err)
		}
		defer f.Close()
		input = f
	default:
		log.Fatal("usage: ttlparse [flags] [file.ttl]")
	}

	p := parser.New(parser.Options{
		BaseURI:          *base,
		Prefixes:         prefixes,
		Validate:         *validate,
		Canonicalize:     *canonicalize,
		DiskInterningDir: *diskIntern,
	})

	sink := rdf.SinkFunc(func(s, pr, o rdf.Term) error {
		_, err := fmt.Println((&rdf.Triple{Subject: s, Predicate: pr, Object: o}).String())
		return err
	})

	if err := p.Parse(input, sink); err != nil {
		log.Fatal(err)
	}
}
