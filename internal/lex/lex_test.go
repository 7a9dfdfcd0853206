package lex

import "testing"

func tokens(t *testing.T, input string) []Token {
	t.Helper()
	l, err := New(input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out
		}
	}
}

func TestLexIRI(t *testing.T) {
	toks := tokens(t, "<http://example.org/s>")
	if toks[0].Kind != IRIRef || toks[0].Lexeme != "http://example.org/s" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestLexPrefixedName(t *testing.T) {
	toks := tokens(t, "ex:subject")
	if toks[0].Kind != PNameLN {
		t.Fatalf("expected PNAME_LN, got %v", toks[0])
	}
	pv, ok := toks[0].Value.(PrefixedValue)
	if !ok || pv.Prefix != "ex" || pv.Local != "subject" {
		t.Fatalf("got %+v", toks[0].Value)
	}
}

func TestLexEmptyPrefixName(t *testing.T) {
	toks := tokens(t, ":x")
	if toks[0].Kind != PNameLN {
		t.Fatalf("expected PNAME_LN, got %v", toks[0])
	}
	pv := toks[0].Value.(PrefixedValue)
	if pv.Prefix != "" || pv.Local != "x" {
		t.Fatalf("got %+v", pv)
	}
}

func TestLexKeywordA(t *testing.T) {
	toks := tokens(t, "a")
	if toks[0].Kind != Keyword || toks[0].Lexeme != "a" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestLexAtPrefixKeyword(t *testing.T) {
	toks := tokens(t, "@prefix")
	if toks[0].Kind != Keyword || toks[0].Lexeme != "@prefix" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestLexLangtag(t *testing.T) {
	toks := tokens(t, "@en-US")
	if toks[0].Kind != LangTag || toks[0].Lexeme != "en-US" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestLexStringLiteral(t *testing.T) {
	toks := tokens(t, `"hello\tworld"`)
	if toks[0].Kind != StringLiteral2 {
		t.Fatalf("expected STRING_LITERAL2, got %v", toks[0])
	}
	if toks[0].Lexeme != "hello\tworld" {
		t.Fatalf("got %q", toks[0].Lexeme)
	}
}

func TestLexLongStringLiteral(t *testing.T) {
	toks := tokens(t, `"""line1
line2"""`)
	if toks[0].Kind != StringLiteralLong2 {
		t.Fatalf("expected STRING_LITERAL_LONG2, got %v", toks[0])
	}
	if toks[0].Lexeme != "line1\nline2" {
		t.Fatalf("got %q", toks[0].Lexeme)
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"42", Integer},
		{"-17", Integer},
		{"3.14", Decimal},
		{"1.0e10", Double},
		{".5e3", Double},
	}
	for _, tt := range tests {
		toks := tokens(t, tt.in)
		if toks[0].Kind != tt.kind {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.kind, toks[0].Kind)
		}
	}
}

func TestLexBlankNodeLabel(t *testing.T) {
	toks := tokens(t, "_:b1")
	if toks[0].Kind != BlankNodeLabel || toks[0].Lexeme != "b1" {
		t.Fatalf("got %v", toks[0])
	}
}

func TestLexNilAndAnon(t *testing.T) {
	toks := tokens(t, "() []")
	if toks[0].Kind != Nil {
		t.Fatalf("expected NIL, got %v", toks[0])
	}
	if toks[1].Kind != Anon {
		t.Fatalf("expected ANON, got %v", toks[1])
	}
}

func TestLexParenWithContent(t *testing.T) {
	toks := tokens(t, "( 1 2 )")
	if toks[0].Kind != Delimiter || toks[0].Lexeme != "(" {
		t.Fatalf("expected delimiter '(', got %v", toks[0])
	}
}

func TestLexDelimiters(t *testing.T) {
	toks := tokens(t, ". , ; ^^")
	want := []string{".", ",", ";", "^^"}
	for i, w := range want {
		if toks[i].Kind != Delimiter || toks[i].Lexeme != w {
			t.Fatalf("token %d: got %v, want delimiter %q", i, toks[i], w)
		}
	}
}

func TestLexComment(t *testing.T) {
	toks := tokens(t, "# a comment\n<a>")
	if toks[0].Kind != IRIRef {
		t.Fatalf("expected comment to be skipped, got %v", toks[0])
	}
	if toks[0].Line != 2 {
		t.Fatalf("expected line 2, got %d", toks[0].Line)
	}
}

func TestLexInvalidIRIChar(t *testing.T) {
	l, err := New(`<a b>`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := l.Next(); err == nil {
		t.Fatal("expected lex error for space inside IRI")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l, err := New("<a> <b>")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, err := l.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	second, err := l.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if first != second {
		t.Fatalf("peek not idempotent: %v != %v", first, second)
	}
	consumed, err := l.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if consumed != first {
		t.Fatalf("Next after Peek returned different token: %v != %v", consumed, first)
	}
}
