// Package parsetable is the static LL(1) artifact the parser driver walks:
// a table mapping (non-terminal, lookahead terminal) to a production body,
// a FOLLOW-set table used for the epsilon/ε case, and semantic-action
// markers embedded in production bodies at the point they must fire.
//
// This table is the "offline generator" output spec.md treats as an input
// artifact (§4.3). No example repo in the corpus builds one — both
// reference Turtle implementations hand-roll recursive descent — so the
// production set here is transcribed directly from the W3C Turtle 1.1
// EBNF and right-recursified where a production would otherwise need more
// than one token of lookahead (predicateObjectList's ';'-repetition and
// objectList's ','-repetition, turtleDoc's statement*).
package parsetable

import "fmt"

// Terminal identifies an LL(1) lookahead class. Several map to the same
// lex.Kind but are distinguished by lexeme (e.g. the eight Delimiter
// terminals), because the grammar needs that finer distinction to pick a
// production from one token of lookahead.
type Terminal int

const (
	TermEOF Terminal = iota
	TermIRIRef
	TermPNameNS
	TermPNameLN
	TermBlankNodeLabel
	TermLangTag
	TermInteger
	TermDecimal
	TermDouble
	TermBoolean
	TermString1
	TermString2
	TermStringLong1
	TermStringLong2
	TermNil
	TermAnon
	TermKwA
	TermKwPrefixAt
	TermKwBaseAt
	TermKwPrefix
	TermKwBase
	TermDot
	TermComma
	TermSemicolon
	TermLParen
	TermRParen
	TermLBracket
	TermRBracket
	TermCaret2
	numTerminals
)

var terminalNames = [...]string{
	"EOF", "IRIREF", "PNAME_NS", "PNAME_LN", "BLANK_NODE_LABEL", "LANGTAG",
	"INTEGER", "DECIMAL", "DOUBLE", "BOOLEAN",
	"STRING_LITERAL1", "STRING_LITERAL2", "STRING_LITERAL_LONG1", "STRING_LITERAL_LONG2",
	"NIL", "ANON", "'a'", "'@prefix'", "'@base'", "PREFIX", "BASE",
	"'.'", "','", "';'", "'('", "')'", "'['", "']'", "'^^'",
}

func (t Terminal) String() string {
	if int(t) >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return fmt.Sprintf("Terminal(%d)", int(t))
}

// NonTerminal identifies a grammar symbol the parser expands via the
// table.
type NonTerminal int

const (
	NTTurtleDoc NonTerminal = iota
	NTStatementList
	NTStatement
	NTDirective
	NTPrefixID
	NTBase
	NTSparqlPrefix
	NTSparqlBase
	NTTriples
	NTPredicateObjectList
	NTPOTail
	NTPOTailBody
	NTObjectList
	NTObjectListTail
	NTVerb
	NTSubject
	NTPredicate
	NTObject
	NTBlankNode
	NTBlankNodePropertyList
	NTCollection
	NTCollectionItems
	NTLiteral
	NTRDFLiteral
	NTLiteralSuffix
	NTNumericLiteral
	NTBooleanLiteral
	NTIri
	NTPrefixedName
	numNonTerminals
)

// ActionID identifies a semantic action (component E) embedded at a
// specific position within a production body.
type ActionID int

const (
	ActNone ActionID = iota
	ActPrefixID
	ActBase
	ActSparqlPrefix
	ActSparqlBase
	ActTriplesSubjectReady
	ActTriplesEnd
	ActVerbA
	ActVerbIri
	ActEmitObject
	ActBlankNodePropertyListStart
	ActBlankNodePropertyListEnd
	ActCollectionStart
	ActCollectionItem
	ActCollectionEnd
	ActCollectionEmpty
	ActBlankNodeLabel
	ActAnonBlankNode
	ActIriRef
	ActPrefixedName
	ActRDFLiteralBase
	ActLiteralSuffixLang
	ActLiteralSuffixType
	ActNumericLiteral
	ActBooleanLiteral
	ActLiteralSuffixPlain
)

// SymbolKind distinguishes the three things a production body element can
// be.
type SymbolKind int

const (
	SymTerminal SymbolKind = iota
	SymNonTerminal
	SymAction
)

// Symbol is one element of a production body.
type Symbol struct {
	Kind   SymbolKind
	Term   Terminal
	NT     NonTerminal
	Action ActionID
}

func T(t Terminal) Symbol       { return Symbol{Kind: SymTerminal, Term: t} }
func N(nt NonTerminal) Symbol   { return Symbol{Kind: SymNonTerminal, NT: nt} }
func A(a ActionID) Symbol       { return Symbol{Kind: SymAction, Action: a} }

// Production is one grammar rule: expanding NT under some lookahead
// terminal(s) yields Body, left to right.
type Production struct {
	NT   NonTerminal
	Body []Symbol
}

// Table is the compiled offline artifact: dense arrays indexed by
// (non-terminal id, terminal id), built once from the declarative rule
// list below the way a real grammar compiler's output would be loaded.
type Table struct {
	cell          [][]int // [NT][Terminal] -> index into Productions, or -1
	Prod          []Production
	nullable      []bool
	follow        [][]bool    // [NT][Terminal] -> in FOLLOW(NT)
	epsilonAction []ActionID // [NT] -> action to run when NT is taken as empty
}

// Lookup returns the production to expand NT under lookahead term, the
// production index, and whether a production exists.
func (t *Table) Lookup(nt NonTerminal, term Terminal) (Production, int, bool) {
	idx := t.cell[nt][term]
	if idx < 0 {
		return Production{}, -1, false
	}
	return t.Prod[idx], idx, true
}

// Nullable reports whether nt may be expanded as empty when no production
// matches the lookahead.
func (t *Table) Nullable(nt NonTerminal) bool { return t.nullable[nt] }

// InFollow reports whether term is in FOLLOW(nt).
func (t *Table) InFollow(nt NonTerminal, term Terminal) bool { return t.follow[nt][term] }

// EpsilonAction returns the action the driver must run when nt is taken as
// empty (ActNone for most non-terminals: emptiness alone needs no action).
// NTLiteralSuffix is the one case with real work to do on the empty path:
// a string with no LANGTAG or "^^" datatype suffix is still a plain literal.
func (t *Table) EpsilonAction(nt NonTerminal) ActionID { return t.epsilonAction[nt] }

type rule struct {
	nt    NonTerminal
	terms []Terminal
	body  []Symbol
}

func New() *Table {
	rules := grammarRules()

	t := &Table{
		Prod: make([]Production, 0, len(rules)),
	}
	t.cell = make([][]int, numNonTerminals)
	for i := range t.cell {
		t.cell[i] = make([]int, numTerminals)
		for j := range t.cell[i] {
			t.cell[i][j] = -1
		}
	}

	for _, r := range rules {
		idx := len(t.Prod)
		t.Prod = append(t.Prod, Production{NT: r.nt, Body: r.body})
		for _, term := range r.terms {
			if t.cell[r.nt][term] != -1 {
				panic(fmt.Sprintf("parsetable: ambiguous entry for (%d,%d): not LL(1)", r.nt, term))
			}
			t.cell[r.nt][term] = idx
		}
	}

	t.nullable = make([]bool, numNonTerminals)
	t.follow = make([][]bool, numNonTerminals)
	for i := range t.follow {
		t.follow[i] = make([]bool, numTerminals)
	}
	for nt, terms := range followSets() {
		t.nullable[nt] = true
		for _, term := range terms {
			t.follow[nt][term] = true
		}
	}

	t.epsilonAction = make([]ActionID, numNonTerminals)
	t.epsilonAction[NTLiteralSuffix] = ActLiteralSuffixPlain

	return t
}

// iriStartTerminals is FIRST(iri): the tokens that may begin an IRI or
// prefixed name.
var iriStartTerminals = []Terminal{TermIRIRef, TermPNameNS, TermPNameLN}

// subjectStartTerminals is FIRST(subject): iri | BlankNode | collection.
var subjectStartTerminals = []Terminal{
	TermIRIRef, TermPNameNS, TermPNameLN,
	TermBlankNodeLabel, TermAnon,
	TermNil, TermLParen,
}

// objectStartTerminals is FIRST(object): everything subject accepts, plus
// a blankNodePropertyList and every literal-starting token.
var objectStartTerminals = append(append([]Terminal{TermLBracket}, subjectStartTerminals...),
	TermInteger, TermDecimal, TermDouble, TermBoolean,
	TermString1, TermString2, TermStringLong1, TermStringLong2,
)

func grammarRules() []rule {
	return []rule{
		// turtleDoc ::= statement*
		{NTTurtleDoc, append(append([]Terminal{TermEOF, TermKwPrefixAt, TermKwBaseAt, TermKwPrefix, TermKwBase}, subjectStartTerminals...), TermLBracket),
			[]Symbol{N(NTStatementList)}},

		// statementList ::= statement statementList | ε (Follow: EOF)
		{NTStatementList, append(append([]Terminal{TermKwPrefixAt, TermKwBaseAt, TermKwPrefix, TermKwBase}, subjectStartTerminals...), TermLBracket),
			[]Symbol{N(NTStatement), N(NTStatementList)}},

		// statement ::= directive | triples '.'
		{NTStatement, []Terminal{TermKwPrefixAt, TermKwBaseAt, TermKwPrefix, TermKwBase},
			[]Symbol{N(NTDirective)}},
		{NTStatement, append(subjectStartTerminals, TermLBracket),
			[]Symbol{N(NTTriples), T(TermDot), A(ActTriplesEnd)}},

		// directive ::= prefixID | base | sparqlPrefix | sparqlBase
		{NTDirective, []Terminal{TermKwPrefixAt}, []Symbol{N(NTPrefixID)}},
		{NTDirective, []Terminal{TermKwBaseAt}, []Symbol{N(NTBase)}},
		{NTDirective, []Terminal{TermKwPrefix}, []Symbol{N(NTSparqlPrefix)}},
		{NTDirective, []Terminal{TermKwBase}, []Symbol{N(NTSparqlBase)}},

		// '@prefix' PNAME_NS IRIREF '.'
		{NTPrefixID, []Terminal{TermKwPrefixAt},
			[]Symbol{T(TermKwPrefixAt), T(TermPNameNS), T(TermIRIRef), T(TermDot), A(ActPrefixID)}},
		// '@base' IRIREF '.'
		{NTBase, []Terminal{TermKwBaseAt},
			[]Symbol{T(TermKwBaseAt), T(TermIRIRef), T(TermDot), A(ActBase)}},
		// PREFIX PNAME_NS IRIREF
		{NTSparqlPrefix, []Terminal{TermKwPrefix},
			[]Symbol{T(TermKwPrefix), T(TermPNameNS), T(TermIRIRef), A(ActSparqlPrefix)}},
		// BASE IRIREF
		{NTSparqlBase, []Terminal{TermKwBase},
			[]Symbol{T(TermKwBase), T(TermIRIRef), A(ActSparqlBase)}},

		// triples ::= subject predicateObjectList | blankNodePropertyList predicateObjectList?
		{NTTriples, subjectStartTerminals,
			[]Symbol{N(NTSubject), A(ActTriplesSubjectReady), N(NTPredicateObjectList)}},
		{NTTriples, []Terminal{TermLBracket},
			[]Symbol{N(NTBlankNodePropertyList), A(ActTriplesSubjectReady), N(NTPredicateObjectList)}},

		// predicateObjectList ::= verb objectList poTail
		{NTPredicateObjectList, append([]Terminal{TermKwA}, iriStartTerminals...),
			[]Symbol{N(NTVerb), N(NTObjectList), N(NTPOTail)}},

		// poTail ::= ';' poTailBody | ε (Follow: '.' ')' ']')
		{NTPOTail, []Terminal{TermSemicolon}, []Symbol{T(TermSemicolon), N(NTPOTailBody)}},

		// poTailBody ::= verb objectList poTail | ε (Follow: '.' ')' ']' ';')
		{NTPOTailBody, append([]Terminal{TermKwA}, iriStartTerminals...),
			[]Symbol{N(NTVerb), N(NTObjectList), N(NTPOTail)}},

		// objectList ::= object objectListTail
		{NTObjectList, objectStartTerminals,
			[]Symbol{N(NTObject), A(ActEmitObject), N(NTObjectListTail)}},

		// objectListTail ::= ',' objectList | ε (Follow: '.' ')' ']' ';')
		{NTObjectListTail, []Terminal{TermComma}, []Symbol{T(TermComma), N(NTObjectList)}},

		// verb ::= 'a' | iri
		{NTVerb, []Terminal{TermKwA}, []Symbol{T(TermKwA), A(ActVerbA)}},
		{NTVerb, iriStartTerminals, []Symbol{N(NTIri), A(ActVerbIri)}},

		// subject ::= iri | BlankNode | collection
		{NTSubject, iriStartTerminals, []Symbol{N(NTIri)}},
		{NTSubject, []Terminal{TermBlankNodeLabel, TermAnon}, []Symbol{N(NTBlankNode)}},
		{NTSubject, []Terminal{TermNil, TermLParen}, []Symbol{N(NTCollection)}},

		// object ::= iri | BlankNode | collection | blankNodePropertyList | literal
		{NTObject, iriStartTerminals, []Symbol{N(NTIri)}},
		{NTObject, []Terminal{TermBlankNodeLabel, TermAnon}, []Symbol{N(NTBlankNode)}},
		{NTObject, []Terminal{TermNil, TermLParen}, []Symbol{N(NTCollection)}},
		{NTObject, []Terminal{TermLBracket}, []Symbol{N(NTBlankNodePropertyList)}},
		{NTObject, []Terminal{TermInteger, TermDecimal, TermDouble, TermBoolean,
			TermString1, TermString2, TermStringLong1, TermStringLong2}, []Symbol{N(NTLiteral)}},

		// BlankNode ::= BLANK_NODE_LABEL | ANON
		{NTBlankNode, []Terminal{TermBlankNodeLabel}, []Symbol{T(TermBlankNodeLabel), A(ActBlankNodeLabel)}},
		{NTBlankNode, []Terminal{TermAnon}, []Symbol{T(TermAnon), A(ActAnonBlankNode)}},

		// blankNodePropertyList ::= '[' predicateObjectList ']'
		{NTBlankNodePropertyList, []Terminal{TermLBracket},
			[]Symbol{T(TermLBracket), A(ActBlankNodePropertyListStart), N(NTPredicateObjectList), T(TermRBracket), A(ActBlankNodePropertyListEnd)}},

		// collection ::= NIL | '(' collectionItems ')'
		{NTCollection, []Terminal{TermNil}, []Symbol{T(TermNil), A(ActCollectionEmpty)}},
		{NTCollection, []Terminal{TermLParen},
			[]Symbol{T(TermLParen), A(ActCollectionStart), N(NTCollectionItems), T(TermRParen), A(ActCollectionEnd)}},

		// collectionItems ::= object collectionItems | ε (Follow: ')')
		{NTCollectionItems, objectStartTerminals,
			[]Symbol{N(NTObject), A(ActCollectionItem), N(NTCollectionItems)}},

		// literal ::= RDFLiteral | NumericLiteral | BooleanLiteral
		{NTLiteral, []Terminal{TermString1, TermString2, TermStringLong1, TermStringLong2}, []Symbol{N(NTRDFLiteral)}},
		{NTLiteral, []Terminal{TermInteger, TermDecimal, TermDouble}, []Symbol{N(NTNumericLiteral)}},
		{NTLiteral, []Terminal{TermBoolean}, []Symbol{N(NTBooleanLiteral)}},

		// RDFLiteral ::= String literalSuffix (one rule per string kind,
		// since each must consume its own distinct terminal).
		{NTRDFLiteral, []Terminal{TermString1}, []Symbol{T(TermString1), A(ActRDFLiteralBase), N(NTLiteralSuffix)}},
		{NTRDFLiteral, []Terminal{TermString2}, []Symbol{T(TermString2), A(ActRDFLiteralBase), N(NTLiteralSuffix)}},
		{NTRDFLiteral, []Terminal{TermStringLong1}, []Symbol{T(TermStringLong1), A(ActRDFLiteralBase), N(NTLiteralSuffix)}},
		{NTRDFLiteral, []Terminal{TermStringLong2}, []Symbol{T(TermStringLong2), A(ActRDFLiteralBase), N(NTLiteralSuffix)}},

		// literalSuffix ::= LANGTAG | '^^' iri | ε (Follow: everywhere a literal can end)
		{NTLiteralSuffix, []Terminal{TermLangTag}, []Symbol{T(TermLangTag), A(ActLiteralSuffixLang)}},
		{NTLiteralSuffix, []Terminal{TermCaret2}, []Symbol{T(TermCaret2), N(NTIri), A(ActLiteralSuffixType)}},

		{NTNumericLiteral, []Terminal{TermInteger}, []Symbol{T(TermInteger), A(ActNumericLiteral)}},
		{NTNumericLiteral, []Terminal{TermDecimal}, []Symbol{T(TermDecimal), A(ActNumericLiteral)}},
		{NTNumericLiteral, []Terminal{TermDouble}, []Symbol{T(TermDouble), A(ActNumericLiteral)}},
		{NTBooleanLiteral, []Terminal{TermBoolean}, []Symbol{T(TermBoolean), A(ActBooleanLiteral)}},

		// iri ::= IRIREF | PrefixedName
		{NTIri, []Terminal{TermIRIRef}, []Symbol{T(TermIRIRef), A(ActIriRef)}},
		{NTIri, []Terminal{TermPNameNS, TermPNameLN}, []Symbol{N(NTPrefixedName)}},

		{NTPrefixedName, []Terminal{TermPNameLN}, []Symbol{T(TermPNameLN), A(ActPrefixedName)}},
		{NTPrefixedName, []Terminal{TermPNameNS}, []Symbol{T(TermPNameNS), A(ActPrefixedName)}},
	}
}

// followSets lists, per nullable non-terminal, the FOLLOW terminals under
// which the driver accepts it as empty rather than erroring.
func followSets() map[NonTerminal][]Terminal {
	poEnd := []Terminal{TermDot, TermRParen, TermRBracket}
	return map[NonTerminal][]Terminal{
		NTStatementList:       {TermEOF},
		NTPredicateObjectList: poEnd,
		NTPOTail:              poEnd,
		NTPOTailBody:          append(append([]Terminal{}, poEnd...), TermSemicolon),
		NTObjectListTail:      append(append([]Terminal{}, poEnd...), TermSemicolon),
		NTCollectionItems:     {TermRParen},
		NTLiteralSuffix:       append([]Terminal{TermDot, TermRParen, TermRBracket, TermSemicolon, TermComma}, objectStartTerminals...),
	}
}
