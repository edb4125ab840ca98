package syntax

import "testing"

func scanAll(t *testing.T, src string) []SemanticElement {
	t.Helper()
	s := NewScanner("test.uh", []byte(src))
	var toks []SemanticElement
	for {
		tok, err := s.NextToken()
		if err != nil {
			t.Fatalf("unexpected scan error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EndOfFileToken {
			return toks
		}
	}
}

func TestScannerPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "{ } ( ) ; , : + - < > = == * / %")
	wantKinds := []SyntaxKind{
		OpenBraceToken, CloseBraceToken, OpenParenToken, CloseParenToken,
		SemicolonToken, CommaToken, ColonToken, PlusToken, MinusToken,
		LessThanToken, GreaterThanToken, EqualsToken, EqualsEqualsToken,
		AsteriskToken, SlashToken, PercentToken, EndOfFileToken,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, want)
		}
	}
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "let x func f if else return true false bool int void Foo _bar")
	wantKinds := []SyntaxKind{
		LetKeyword, IdentifierToken, FuncKeyword, IdentifierToken, IfKeyword,
		ElseKeyword, ReturnKeyword, TrueKeyword, FalseKeyword, BoolKeyword,
		IntKeyword, VoidKeyword, IdentifierToken, IdentifierToken, EndOfFileToken,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantKinds))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d (%q): kind = %v, want %v", i, toks[i].RawText, toks[i].Kind, want)
		}
	}
}

func TestScannerIntegerLiteral(t *testing.T) {
	toks := scanAll(t, "1 23 456")
	want := []string{"1", "23", "456"}
	for i, w := range want {
		if toks[i].Kind != IntegerLiteralToken {
			t.Errorf("token %d: kind = %v, want IntegerLiteralToken", i, toks[i].Kind)
		}
		if toks[i].RawText != w {
			t.Errorf("token %d: RawText = %q, want %q", i, toks[i].RawText, w)
		}
	}
}

// A future-reserved word used as an identifier is a fatal lexical
// error at the word's starting column.
func TestScannerFutureReservedIsFatal(t *testing.T) {
	s := NewScanner("test.uh", []byte("let while = 1;"))
	var lastErr error
	for {
		tok, err := s.NextToken()
		if err != nil {
			lastErr = err
			break
		}
		if tok.Kind == EndOfFileToken {
			break
		}
	}
	lexErr, ok := lastErr.(*LexicalError)
	if !ok {
		t.Fatalf("expected a *LexicalError, got %T (%v)", lastErr, lastErr)
	}
	if lexErr.Code != CodeLexFutureReserved {
		t.Errorf("Code = %v, want CodeLexFutureReserved", lexErr.Code)
	}
	if lexErr.Token.Position.Column() != 5 {
		t.Errorf("Column = %d, want 5", lexErr.Token.Position.Column())
	}
}

// With a future-reserved handler installed, the scanner downgrades the
// error: it calls the handler and reports the word as a plain identifier
// instead of aborting.
func TestScannerFutureReservedHandlerDowngrades(t *testing.T) {
	var handled []SemanticElement
	s := NewScanner("test.uh", []byte("let while = 1;"), WithFutureReservedHandler(func(tok SemanticElement) {
		handled = append(handled, tok)
	}))
	var toks []SemanticElement
	for {
		tok, err := s.NextToken()
		if err != nil {
			t.Fatalf("unexpected scan error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EndOfFileToken {
			break
		}
	}
	if len(handled) != 1 || handled[0].RawText != "while" {
		t.Fatalf("handled = %#v, want one token %q", handled, "while")
	}
	if toks[1].Kind != IdentifierToken || toks[1].RawText != "while" {
		t.Errorf("token 1 = %v %q, want IdentifierToken %q", toks[1].Kind, toks[1].RawText, "while")
	}
}

// A lone carriage return is a fatal lexical error.
func TestScannerCarriageReturnIsFatal(t *testing.T) {
	s := NewScanner("test.uh", []byte("let x\r= 1;"))
	var lastErr error
	for {
		_, err := s.NextToken()
		if err != nil {
			lastErr = err
			break
		}
	}
	lexErr, ok := lastErr.(*LexicalError)
	if !ok {
		t.Fatalf("expected a *LexicalError, got %T (%v)", lastErr, lastErr)
	}
	if lexErr.Code != CodeLexCarriageReturn {
		t.Errorf("Code = %v, want CodeLexCarriageReturn", lexErr.Code)
	}
}

func TestScannerEOFIsSticky(t *testing.T) {
	s := NewScanner("test.uh", []byte("x"))
	_, _ = s.NextToken()
	for i := 0; i < 3; i++ {
		tok, err := s.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != EndOfFileToken {
			t.Fatalf("call %d: kind = %v, want EndOfFileToken", i, tok.Kind)
		}
		if tok.Position.Length() != 0 {
			t.Errorf("EndOfFileToken length = %d, want 0", tok.Position.Length())
		}
	}
}

func TestScannerLineAndColumnTracking(t *testing.T) {
	src := "let x;\nlet y;"
	toks := scanAll(t, src)
	// "let" on line 2 starts at column 1.
	var secondLet SemanticElement
	seen := 0
	for _, tok := range toks {
		if tok.Kind == LetKeyword {
			seen++
			if seen == 2 {
				secondLet = tok
			}
		}
	}
	if secondLet.Position.Line() != 2 {
		t.Errorf("second 'let' line = %d, want 2", secondLet.Position.Line())
	}
	if secondLet.Position.Column() != 1 {
		t.Errorf("second 'let' column = %d, want 1", secondLet.Position.Column())
	}
}

// LookAhead never changes observable scanner state.
func TestLookAheadRestoresState(t *testing.T) {
	s := NewScanner("test.uh", []byte("a b c"))
	before := s.GetPos()
	result := LookAhead(s, func() string {
		tok, _ := s.NextToken()
		_, _ = s.NextToken()
		return tok.RawText
	})
	if result != "a" {
		t.Errorf("LookAhead result = %q, want %q", result, "a")
	}
	if s.GetPos() != before {
		t.Errorf("scanner position changed: GetPos() = %d, want %d", s.GetPos(), before)
	}
}

// TryScan changes state iff its callback reports true.
func TestTryScanCommitsOnlyOnSuccess(t *testing.T) {
	s := NewScanner("test.uh", []byte("a b"))

	committed := TryScan(s, func() (SemanticElement, bool) {
		tok, _ := s.NextToken()
		return tok, tok.Kind == IdentifierToken
	})
	if committed.RawText != "a" {
		t.Fatalf("expected commit of %q, got %q", "a", committed.RawText)
	}
	nextTok, _ := s.NextToken()
	if nextTok.RawText != "b" {
		t.Errorf("after commit, next token = %q, want %q", nextTok.RawText, "b")
	}

	s2 := NewScanner("test.uh", []byte("a b"))
	posBefore := s2.GetPos()
	_ = TryScan(s2, func() (SemanticElement, bool) {
		_, _ = s2.NextToken()
		return SemanticElement{}, false
	})
	if s2.GetPos() != posBefore {
		t.Errorf("failed TryScan should restore position: got %d, want %d", s2.GetPos(), posBefore)
	}
}

// The scanner's token stream, plus whitespace/newlines it
// skips, covers the source exactly.
func TestScannerCoversSourceExactly(t *testing.T) {
	src := "let x : int = 1 + 2;\nreturn x;"
	s := NewScanner("test.uh", []byte(src))
	covered := 0
	lastEnd := 0
	for {
		tok, err := s.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind == EndOfFileToken {
			break
		}
		gap := tok.Position.Pos() - lastEnd
		if gap < 0 {
			t.Fatalf("token at %d overlaps previous token ending at %d", tok.Position.Pos(), lastEnd)
		}
		covered += gap + tok.Position.Length()
		lastEnd = tok.Position.Pos() + tok.Position.Length()
	}
	covered += len(src) - lastEnd
	if covered != len(src) {
		t.Errorf("covered %d bytes, want %d", covered, len(src))
	}
}
