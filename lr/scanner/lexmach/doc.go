/*
Package lexmach tokenizes grammar files with lexmachine
(https://github.com/timtadh/lexmachine), a DFA based scanner generator.

Package grammarfile registers patterns for identifiers, quoted terminals,
comments and white space, and lists its punctuation and directives as
literal tokens:

    toks := lexmach.Tokens{
        Literals: []string{":", "->", "|", ";"},
        Keywords: []string{"%start", "%empty", "ε"},
        Types:    map[string]int{":": tokColon, "->": tokArrow, …},
    }
    adapter, err := lexmach.NewAdapter(func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
        lexer.Add([]byte(`'[^']*'`), lexmach.MakeToken("STRING", tokString))
        …
    }, toks)

Compiling the DFA is comparatively expensive; an adapter is created once and
hands out a fresh Scanner per input. Scanners implement scanner.Tokenizer and
report positions as line and column, counting from 1.

Unmatched input is reported to the scanner's error handler and skipped, so
scanning always makes progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach
