package lexer

import (
	"github.com/phpfront/phpfront/perror"
	"github.com/phpfront/phpfront/token"
)

// TokenizeAll tokenizes the entire input and returns all tokens including EOF.
func TokenizeAll(input string) []TokenInfo {
	l := New(input)
	tokens := []TokenInfo{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}

// TokenizeFiltered tokenizes the input and returns only the tokens
// that carry syntax: whitespace and comments are dropped.
func TokenizeFiltered(input string) []TokenInfo {
	l := New(input)
	tokens := []TokenInfo{}
	for {
		tok := l.NextToken()
		switch tok.Type {
		case token.WHITESPACE, token.T_COMMENT, token.T_DOC_COMMENT:
		default:
			tokens = append(tokens, tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}

// CountTokens returns the number of tokens of each type in the input.
func CountTokens(input string) map[token.Token]int {
	counts := make(map[token.Token]int)
	for _, tok := range TokenizeAll(input) {
		counts[tok.Type]++
	}
	return counts
}

// ScanDiagnostics runs the lexer over the whole input and returns the
// lexical diagnostics it records (unterminated strings, invalid
// escapes, malformed numeric literals), without parsing.
func ScanDiagnostics(input string) []*perror.ParseError {
	l := New(input)
	for {
		if l.NextToken().Type == token.EOF {
			break
		}
	}
	return l.Errors()
}
