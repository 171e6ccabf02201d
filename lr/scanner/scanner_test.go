package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultToken(t *testing.T) {
	tok := MakeDefaultToken(TokType(3), "abc", Span{4, 7}, Position{Line: 2, Column: 5})
	if tok.TokType() != 3 || tok.Lexeme() != "abc" || tok.Span().Len() != 3 {
		t.Errorf("Unexpected token %v", tok)
	}
	if tok.String() != `"abc"@2:5` {
		t.Errorf("Expected token to print as \"abc\"@2:5, is %s", tok)
	}
	eof := MakeDefaultToken(EOF, "", Span{}, Position{})
	if eof.String() != "<EOF>" {
		t.Errorf("Expected EOF token to print as <EOF>, is %s", eof)
	}
}

func TestLogErrorWithPercentInMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grammar.scanner")
	defer teardown()
	//
	LogError(errors.New(`no match for "100%d"`)) // must not be taken as a format
}
