package parser

import (
	"fmt"

	"github.com/phpfront/phpfront/ast"
	"github.com/phpfront/phpfront/perror"
	"github.com/phpfront/phpfront/token"
)

// syncContext selects which set of tokens ends panic-mode recovery.
type syncContext int

const (
	syncStatement syncContext = iota
	syncExpression
	syncClassBody
)

type openDelim struct {
	kind token.Token
	pos  ast.Position
}

func closerFor(opener token.Token) token.Token {
	switch opener {
	case token.LPAREN:
		return token.RPAREN
	case token.LBRACKET:
		return token.RBRACKET
	case token.LBRACE, token.T_CURLY_OPEN, token.T_DOLLAR_OPEN_CURLY_BRACES:
		return token.RBRACE
	default:
		return token.ILLEGAL
	}
}

// trackDelimiters observes the token that just became p.curToken and
// maintains the parser's delimiter stack, emitting Unexpected for a
// stray closer. It never consumes input on its own.
func (p *Parser) trackDelimiters() {
	if p.halted {
		// Past __halt_compiler: whatever the buffered tokens look
		// like, they are data.
		return
	}
	switch p.curToken.Type {
	case token.LPAREN, token.LBRACKET, token.LBRACE,
		token.T_CURLY_OPEN, token.T_DOLLAR_OPEN_CURLY_BRACES:
		p.delims = append(p.delims, openDelim{kind: p.curToken.Type, pos: p.curPos()})
	case token.RPAREN, token.RBRACKET, token.RBRACE:
		if len(p.delims) == 0 {
			p.addError(perror.Unexpectedf(spanOfToken(p.curPos(), p.curToken.Literal), "unexpected %q", p.curToken.Literal))
			return
		}
		top := p.delims[len(p.delims)-1]
		if closerFor(top.kind) == p.curToken.Type {
			p.delims = p.delims[:len(p.delims)-1]
			return
		}
		// Mismatched closer: report it but don't touch the stack, so an
		// eventual matching closer for `top` still resolves correctly.
		p.addError(perror.Unexpectedf(spanOfToken(p.curPos(), p.curToken.Literal), "unexpected %q", p.curToken.Literal))
	case token.EOF:
		for i := len(p.delims) - 1; i >= 0; i-- {
			d := p.delims[i]
			openSpan := spanOfToken(d.pos, closerLiteral(d.kind))
			p.diags.Add(&perror.ParseError{
				Kind:    perror.UnclosedDelimiter,
				Span:    p.curSpan(),
				Message: fmt.Sprintf("unclosed %q", openLiteral(d.kind)),
				Secondary: &perror.Span{
					Start: uint32(d.pos.Offset),
					End:   openSpan.End,
				},
			})
		}
		p.delims = nil
	}
}

func openLiteral(t token.Token) string {
	switch t {
	case token.LPAREN:
		return "("
	case token.LBRACKET:
		return "["
	case token.LBRACE, token.T_CURLY_OPEN:
		return "{"
	case token.T_DOLLAR_OPEN_CURLY_BRACES:
		return "${"
	default:
		return ""
	}
}

func closerLiteral(t token.Token) string { return openLiteral(t) }

func spanOfToken(pos ast.Position, literal string) perror.Span {
	start := uint32(pos.Offset)
	end := start + uint32(len(literal))
	if end <= start {
		end = start + 1
	}
	return perror.Span{Start: start, End: end}
}

func (p *Parser) curSpan() perror.Span {
	return spanOfToken(p.curPos(), p.curToken.Literal)
}

func (p *Parser) addError(e *perror.ParseError) {
	p.diags.Add(e)
}

// synchronize consumes tokens until a synchronization point for ctx is
// reached (the point itself is not consumed), returning the position
// where the skipped region starts. If the cursor already sits on a sync point, it
// consumes nothing: forward progress is then the caller's
// responsibility, since a sync point is always something the caller
// goes on to consume itself (a statement's ';', an argument list's
// ')', ...).
func (p *Parser) synchronize(ctx syncContext) ast.Position {
	start := p.curPos()
	for !p.curTokenIs(token.EOF) && !p.atSyncPoint(ctx) {
		p.nextToken()
	}
	return start
}

func (p *Parser) atSyncPoint(ctx syncContext) bool {
	switch ctx {
	case syncStatement:
		switch p.curToken.Type {
		case token.SEMICOLON, token.RBRACE, token.LBRACE, token.T_CLOSE_TAG, token.EOF,
			token.T_IF, token.T_WHILE, token.T_FOR, token.T_FOREACH, token.T_SWITCH,
			token.T_DO, token.T_FUNCTION, token.T_CLASS, token.T_INTERFACE, token.T_TRAIT,
			token.T_ENUM, token.T_RETURN, token.T_BREAK, token.T_CONTINUE, token.T_ECHO,
			token.T_TRY, token.T_THROW, token.T_NAMESPACE, token.T_USE, token.T_CONST,
			token.T_GLOBAL, token.T_STATIC, token.T_DECLARE, token.T_UNSET, token.T_GOTO:
			return true
		}
		return false
	case syncExpression:
		switch p.curToken.Type {
		case token.RPAREN, token.RBRACKET, token.RBRACE, token.COMMA, token.SEMICOLON, token.EOF:
			return true
		}
		return false
	case syncClassBody:
		if p.curToken.Type.IsMemberModifier() {
			return true
		}
		switch p.curToken.Type {
		case token.T_FUNCTION, token.T_CONST, token.T_USE, token.T_CASE, token.RBRACE, token.EOF:
			return true
		}
		return false
	default:
		return true
	}
}

// badExprAt synchronizes on an expression sync point and returns a
// BadExpr spanning the skipped tokens, after emitting diag.
func (p *Parser) badExprAt(diag *perror.ParseError) *ast.BadExpr {
	p.addError(diag)
	from := p.curPos()
	p.synchronize(syncExpression)
	return &ast.BadExpr{From: from, To: p.curPos()}
}

// badStmtAt synchronizes on a statement sync point and returns a
// BadStmt spanning the skipped tokens, after emitting diag.
func (p *Parser) badStmtAt(diag *perror.ParseError) *ast.BadStmt {
	p.addError(diag)
	from := p.curPos()
	p.synchronize(syncStatement)
	return &ast.BadStmt{From: from, To: p.curPos()}
}

// badDeclAt synchronizes on a statement sync point and returns a
// BadDecl spanning the skipped tokens, after emitting diag. Used where
// a top-level declaration is missing the name that identifies what is
// being declared, leaving nothing worth keeping from the partial node.
func (p *Parser) badDeclAt(diag *perror.ParseError) *ast.BadDecl {
	p.addError(diag)
	from := p.curPos()
	p.synchronize(syncStatement)
	return &ast.BadDecl{From: from, To: p.curPos()}
}

// expect requires the peek token to be t, advancing and returning true
// on success; otherwise it records an Expected diagnostic for what and
// returns false without advancing.
func (p *Parser) expect(t token.Token, what string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(perror.Expectedf(p.peekSpan(), "%s", what))
	return false
}

// expectAfter requires the peek token to be t, recording an
// ExpectedAfter diagnostic naming the construct just parsed on failure.
func (p *Parser) expectAfter(t token.Token, what, after string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(perror.ExpectedAfterf(p.peekSpan(), "%s after %s", what, after))
	return false
}

// expectConditionClose requires the current token to be the ')' that
// closes a statement's parenthesized condition (if/elseif/while/
// do-while/for/foreach/switch/catch). On success it advances past the
// ')'; on failure it records an ExpectedAfter diagnostic and
// synchronizes to a statement boundary so the body can still be
// located rather than silently treating whatever follows as the
// closing paren.
func (p *Parser) expectConditionClose(what string) {
	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		return
	}
	p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", what))
	p.synchronize(syncStatement)
}

// expectConditionOpen requires the current token to be the '(' that
// opens a statement's parenthesized condition. On success it reports
// true and advances past the '('; on failure it records an
// ExpectedAfter diagnostic and reports false without consuming,
// leaving the caller to fall back to a missing condition.
func (p *Parser) expectConditionOpen(what string) bool {
	if p.curTokenIs(token.LPAREN) {
		p.nextToken()
		return true
	}
	p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'('", what))
	return false
}

// expectSemicolonAfter requires the current token to be the ';' that
// terminates what, advancing past it on success. On failure it
// records an ExpectedAfter diagnostic without consuming; callers that
// tolerate an implicit CloseTag terminator simply continue from
// wherever the cursor already landed.
func (p *Parser) expectSemicolonAfter(what string) bool {
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
		return true
	}
	if p.curTokenIs(token.T_CLOSE_TAG) || p.curTokenIs(token.EOF) {
		return false
	}
	p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", what))
	return false
}

func (p *Parser) peekSpan() perror.Span {
	return spanOfToken(ast.Position{
		Offset: p.peekToken.Pos.Offset,
		Line:   p.peekToken.Pos.Line,
		Column: p.peekToken.Pos.Column,
	}, p.peekToken.Literal)
}

// Errors returns the accumulated diagnostics in append order.
func (p *Parser) Errors() []*perror.ParseError {
	return p.diags.Errors()
}
