package parser

import (
	"github.com/phpfront/phpfront/ast"
	"github.com/phpfront/phpfront/perror"
	"github.com/phpfront/phpfront/token"
)

func (p *Parser) parseIfStmt() *ast.IfStmt {
	ifStmt := &ast.IfStmt{IfPos: p.curPos()}
	p.nextToken() // skip if
	p.skipWhitespace()

	// Condition
	if p.expectConditionOpen("'if'") {
		p.skipWhitespace()
		ifStmt.Cond = p.parseExpression(LOWEST)
		p.skipWhitespace()
		p.expectConditionClose("'if' condition")
	}

	p.skipWhitespace()

	// Check for alternative syntax
	if p.curTokenIs(token.COLON) {
		ifStmt.UseAltSyntax = true
		p.nextToken()
		ifStmt.Body = p.parseAltSyntaxBody(token.T_ELSEIF, token.T_ELSE, token.T_ENDIF)
	} else {
		ifStmt.Body = p.parseStatementBody()
	}

	p.skipWhitespace()

	// Elseif clauses
	for p.curTokenIs(token.T_ELSEIF) {
		elseif := &ast.ElseIfClause{ElseIfPos: p.curPos()}
		p.nextToken()
		p.skipWhitespace()

		if p.expectConditionOpen("'elseif'") {
			p.skipWhitespace()
			elseif.Cond = p.parseExpression(LOWEST)
			p.skipWhitespace()
			p.expectConditionClose("'elseif' condition")
		}

		p.skipWhitespace()

		if ifStmt.UseAltSyntax {
			p.nextToken() // skip :
			elseif.Body = p.parseAltSyntaxBody(token.T_ELSEIF, token.T_ELSE, token.T_ENDIF)
		} else {
			elseif.Body = p.parseStatementBody()
		}

		ifStmt.ElseIfs = append(ifStmt.ElseIfs, elseif)
		p.skipWhitespace()
	}

	// Else clause
	if p.curTokenIs(token.T_ELSE) {
		elseClause := &ast.ElseClause{ElsePos: p.curPos()}
		p.nextToken()
		p.skipWhitespace()

		if ifStmt.UseAltSyntax {
			p.nextToken() // skip :
			elseClause.Body = p.parseAltSyntaxBody(token.T_ENDIF)
		} else {
			elseClause.Body = p.parseStatementBody()
		}

		ifStmt.Else = elseClause
	}

	// End if (alternative syntax)
	if ifStmt.UseAltSyntax && p.curTokenIs(token.T_ENDIF) {
		ifStmt.EndIf = p.curPos()
		p.nextToken()
		p.skipWhitespace()
		p.expectSemicolonAfter("'endif'")
	}

	return ifStmt
}

func (p *Parser) parseStatementBody() ast.Stmt {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlockStmt()
	}
	return p.parseStatement()
}

func (p *Parser) parseAltSyntaxBody(endTokens ...token.Token) ast.Stmt {
	block := &ast.BlockStmt{Lbrace: p.curPos()}

	for !p.curTokenIs(token.EOF) {
		for _, end := range endTokens {
			if p.curTokenIs(end) {
				return block
			}
		}
		p.skipWhitespace()
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	return block
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	whileStmt := &ast.WhileStmt{WhilePos: p.curPos()}
	p.nextToken() // skip while
	p.skipWhitespace()

	// Condition
	if p.expectConditionOpen("'while'") {
		p.skipWhitespace()
		whileStmt.Cond = p.parseExpression(LOWEST)
		p.skipWhitespace()
		p.expectConditionClose("'while' condition")
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.COLON) {
		whileStmt.UseAltSyntax = true
		p.nextToken()
		whileStmt.Body = p.parseAltSyntaxBody(token.T_ENDWHILE)
		if p.curTokenIs(token.T_ENDWHILE) {
			p.nextToken()
			p.skipWhitespace()
			p.expectSemicolonAfter("'endwhile'")
		}
	} else {
		whileStmt.Body = p.parseStatementBody()
	}

	return whileStmt
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhileStmt {
	doStmt := &ast.DoWhileStmt{DoPos: p.curPos()}
	p.nextToken() // skip do
	p.skipWhitespace()

	// Body
	doStmt.Body = p.parseStatementBody()
	p.skipWhitespace()

	// While
	if p.curTokenIs(token.T_WHILE) {
		doStmt.WhilePos = p.curPos()
		p.nextToken()
		p.skipWhitespace()

		if p.expectConditionOpen("'while'") {
			p.skipWhitespace()
			doStmt.Cond = p.parseExpression(LOWEST)
			p.skipWhitespace()
			p.expectConditionClose("'while' condition")
		}
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		doStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'do ... while' statement")
	}

	return doStmt
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	forStmt := &ast.ForStmt{ForPos: p.curPos()}
	p.nextToken() // skip for
	p.skipWhitespace()

	if p.expectConditionOpen("'for'") {
		p.skipWhitespace()

		// Init
		if !p.curTokenIs(token.SEMICOLON) {
			forStmt.Init = p.parseExpressionList()
		}
		p.skipWhitespace()
		p.expectSemicolonAfter("'for' init clause")

		p.skipWhitespace()

		// Condition
		if !p.curTokenIs(token.SEMICOLON) {
			forStmt.Cond = p.parseExpressionList()
		}
		p.skipWhitespace()
		p.expectSemicolonAfter("'for' condition clause")

		p.skipWhitespace()

		// Loop
		if !p.curTokenIs(token.RPAREN) {
			forStmt.Loop = p.parseExpressionList()
		}
		p.skipWhitespace()
		p.expectConditionClose("'for' clauses")
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.COLON) {
		forStmt.UseAltSyntax = true
		p.nextToken()
		forStmt.Body = p.parseAltSyntaxBody(token.T_ENDFOR)
		if p.curTokenIs(token.T_ENDFOR) {
			p.nextToken()
			p.skipWhitespace()
			p.expectSemicolonAfter("'endfor'")
		}
	} else {
		forStmt.Body = p.parseStatementBody()
	}

	return forStmt
}

func (p *Parser) parseExpressionList() []ast.Expr {
	var exprs []ast.Expr
	for {
		exprs = append(exprs, p.parseExpression(LOWEST))
		p.skipWhitespace()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}
	return exprs
}

func (p *Parser) parseForeachStmt() *ast.ForeachStmt {
	foreachStmt := &ast.ForeachStmt{ForeachPos: p.curPos()}
	p.nextToken() // skip foreach
	p.skipWhitespace()

	if p.expectConditionOpen("'foreach'") {
		p.skipWhitespace()

		// Expression
		foreachStmt.Expr = p.parseExpression(LOWEST)
		p.skipWhitespace()

		// as
		if p.curTokenIs(token.T_AS) {
			p.nextToken()
			p.skipWhitespace()
		}

		// Check for reference
		if p.curTokenIs(token.AMPERSAND) {
			foreachStmt.ByRef = true
			p.nextToken()
			p.skipWhitespace()
		}

		// Key or value
		first := p.parseExpression(LOWEST)
		p.skipWhitespace()

		if p.curTokenIs(token.T_DOUBLE_ARROW) {
			foreachStmt.KeyVar = first
			p.nextToken()
			p.skipWhitespace()

			if p.curTokenIs(token.AMPERSAND) {
				foreachStmt.ByRef = true
				p.nextToken()
				p.skipWhitespace()
			}

			foreachStmt.ValueVar = p.parseExpression(LOWEST)
		} else {
			foreachStmt.ValueVar = first
		}

		p.skipWhitespace()
		p.expectConditionClose("'foreach' clause")
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.COLON) {
		foreachStmt.UseAltSyntax = true
		p.nextToken()
		foreachStmt.Body = p.parseAltSyntaxBody(token.T_ENDFOREACH)
		if p.curTokenIs(token.T_ENDFOREACH) {
			p.nextToken()
			p.skipWhitespace()
			p.expectSemicolonAfter("'endforeach'")
		}
	} else {
		foreachStmt.Body = p.parseStatementBody()
	}

	return foreachStmt
}

func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	switchStmt := &ast.SwitchStmt{SwitchPos: p.curPos()}
	p.nextToken() // skip switch
	p.skipWhitespace()

	// Condition
	if p.expectConditionOpen("'switch'") {
		p.skipWhitespace()
		switchStmt.Cond = p.parseExpression(LOWEST)
		p.skipWhitespace()
		p.expectConditionClose("'switch' condition")
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.COLON) {
		switchStmt.UseAltSyntax = true
		p.nextToken()
	} else if p.curTokenIs(token.LBRACE) {
		switchStmt.Lbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "':' or '{'", "'switch' condition"))
	}

	endToken := token.RBRACE
	if switchStmt.UseAltSyntax {
		endToken = token.T_ENDSWITCH
	}

	for !p.curTokenIs(endToken) && !p.curTokenIs(token.EOF) {
		p.skipWhitespace()
		if p.curTokenIs(endToken) {
			break
		}

		caseClause := &ast.CaseClause{}

		if p.curTokenIs(token.T_CASE) {
			caseClause.CasePos = p.curPos()
			p.nextToken()
			p.skipWhitespace()
			caseClause.Cond = p.parseExpression(LOWEST)
		} else if p.curTokenIs(token.T_DEFAULT) {
			caseClause.CasePos = p.curPos()
			p.nextToken()
		}

		p.skipWhitespace()
		if p.curTokenIs(token.COLON) || p.curTokenIs(token.SEMICOLON) {
			caseClause.Separator = p.curPos()
			p.nextToken()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "':' or ';'", "'case'/'default' label"))
		}

		// Parse case statements
		for !p.curTokenIs(token.T_CASE) && !p.curTokenIs(token.T_DEFAULT) &&
			!p.curTokenIs(endToken) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.T_CASE) || p.curTokenIs(token.T_DEFAULT) || p.curTokenIs(endToken) {
				break
			}
			stmt := p.parseStatement()
			if stmt != nil {
				caseClause.Stmts = append(caseClause.Stmts, stmt)
			}
		}

		switchStmt.Cases = append(switchStmt.Cases, caseClause)
	}

	if p.curTokenIs(endToken) {
		switchStmt.Rbrace = p.curPos()
		p.nextToken()
	} else {
		name := "'}'"
		if switchStmt.UseAltSyntax {
			name = "'endswitch'"
		}
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", name, "'switch' body"))
	}

	if switchStmt.UseAltSyntax {
		p.skipWhitespace()
		p.expectSemicolonAfter("'endswitch'")
	}

	return switchStmt
}

func (p *Parser) parseTryStmt() *ast.TryStmt {
	tryStmt := &ast.TryStmt{TryPos: p.curPos()}
	p.nextToken() // skip try
	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		tryStmt.Body = p.parseBlockStmt()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "'try'"))
	}

	p.skipWhitespace()

	// Catch clauses
	for p.curTokenIs(token.T_CATCH) {
		catch := &ast.CatchClause{CatchPos: p.curPos()}
		p.nextToken()
		p.skipWhitespace()

		if p.expectConditionOpen("'catch'") {
			p.skipWhitespace()

			// Exception types (can be union)
			for {
				if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) {
					catch.Types = append(catch.Types, &ast.Ident{
						NamePos: p.curPos(),
						Name:    p.curToken.Literal,
					})
					p.nextToken()
				}
				p.skipWhitespace()
				if p.curTokenIs(token.PIPE) {
					p.nextToken()
					p.skipWhitespace()
				} else {
					break
				}
			}

			p.skipWhitespace()

			// Variable (optional in PHP 8.0+)
			if p.curTokenIs(token.T_VARIABLE) {
				catch.Var = p.parseVariable().(*ast.Variable)
			}

			p.skipWhitespace()
			p.expectConditionClose("'catch' clause")
		}

		p.skipWhitespace()

		if p.curTokenIs(token.LBRACE) {
			catch.Body = p.parseBlockStmt()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "'catch' clause"))
		}

		tryStmt.Catches = append(tryStmt.Catches, catch)
		p.skipWhitespace()
	}

	// Finally
	if p.curTokenIs(token.T_FINALLY) {
		finally := &ast.FinallyClause{FinallyPos: p.curPos()}
		p.nextToken()
		p.skipWhitespace()

		if p.curTokenIs(token.LBRACE) {
			finally.Body = p.parseBlockStmt()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "'finally'"))
		}

		tryStmt.Finally = finally
	}

	return tryStmt
}

func (p *Parser) parseThrowStmt() *ast.ThrowStmt {
	throwStmt := &ast.ThrowStmt{ThrowPos: p.curPos()}
	p.nextToken() // skip throw
	p.skipWhitespace()

	throwStmt.Expr = p.parseExpression(LOWEST)

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		throwStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'throw' expression")
	}

	return throwStmt
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	returnStmt := &ast.ReturnStmt{ReturnPos: p.curPos()}
	p.nextToken() // skip return
	p.skipWhitespace()

	if !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		returnStmt.Result = p.parseExpression(LOWEST)
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		returnStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'return' statement")
	}

	return returnStmt
}

func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	breakStmt := &ast.BreakStmt{BreakPos: p.curPos()}
	p.nextToken() // skip break
	p.skipWhitespace()

	if !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		breakStmt.Num = p.parseExpression(LOWEST)
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		breakStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'break' statement")
	}

	return breakStmt
}

func (p *Parser) parseContinueStmt() *ast.ContinueStmt {
	continueStmt := &ast.ContinueStmt{ContinuePos: p.curPos()}
	p.nextToken() // skip continue
	p.skipWhitespace()

	if !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		continueStmt.Num = p.parseExpression(LOWEST)
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		continueStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'continue' statement")
	}

	return continueStmt
}

func (p *Parser) parseGotoStmt() *ast.GotoStmt {
	gotoStmt := &ast.GotoStmt{GotoPos: p.curPos()}
	p.nextToken() // skip goto
	p.skipWhitespace()

	if p.curTokenIs(token.T_STRING) {
		gotoStmt.Label = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "a label", "'goto'"))
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		gotoStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'goto' statement")
	}

	return gotoStmt
}

func (p *Parser) parseLabelStmt() *ast.LabelStmt {
	label := &ast.LabelStmt{
		Label: &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		},
	}
	p.nextToken() // skip name
	label.Colon = p.curPos()
	p.nextToken() // skip :
	return label
}

func (p *Parser) parseHaltCompilerStmt() *ast.HaltCompilerStmt {
	halt := &ast.HaltCompilerStmt{HaltPos: p.curPos()}
	p.nextToken() // skip __halt_compiler
	p.skipWhitespace()

	if p.curTokenIs(token.LPAREN) {
		p.nextToken()
		p.skipWhitespace()
		if p.curTokenIs(token.RPAREN) {
			p.nextToken()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", "'__halt_compiler('"))
			p.synchronize(syncStatement)
		}
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'('", "'__halt_compiler'"))
		p.synchronize(syncStatement)
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		halt.Semicolon = p.curPos()
	} else {
		p.expectSemicolonAfter("'__halt_compiler()'")
	}

	// The rest of the input is data. Stop the lexer and drain the
	// already-buffered tokens so every statement loop sees EOF.
	p.l.Halt()
	p.halted = true
	for !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	return halt
}

func (p *Parser) parseEchoStmt() *ast.EchoStmt {
	echoStmt := &ast.EchoStmt{EchoPos: p.curPos()}
	p.nextToken() // skip echo
	p.skipWhitespace()

	for {
		echoStmt.Exprs = append(echoStmt.Exprs, p.parseExpression(LOWEST))
		p.skipWhitespace()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		echoStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'echo' statement")
	}

	return echoStmt
}

func (p *Parser) parseGlobalStmt() *ast.GlobalStmt {
	globalStmt := &ast.GlobalStmt{GlobalPos: p.curPos()}
	p.nextToken() // skip global
	p.skipWhitespace()

	for {
		if p.curTokenIs(token.T_VARIABLE) {
			globalStmt.Vars = append(globalStmt.Vars, p.parseVariable().(*ast.Variable))
		}
		p.skipWhitespace()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		globalStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'global' statement")
	}

	return globalStmt
}

func (p *Parser) parseStaticVarStmt() ast.Stmt {
	staticPos := p.curPos()
	p.nextToken() // skip static
	p.skipWhitespace()

	// static::, static function, and static fn open an expression, not
	// a static variable declaration.
	if p.curTokenIs(token.T_PAAMAYIM_NEKUDOTAYIM) || p.curTokenIs(token.T_FUNCTION) || p.curTokenIs(token.T_FN) {
		var expr ast.Expr
		switch p.curToken.Type {
		case token.T_FUNCTION:
			closure := p.parseClosureExpr().(*ast.ClosureExpr)
			closure.Static = true
			expr = closure
		case token.T_FN:
			arrow := p.parseArrowFunc().(*ast.ArrowFuncExpr)
			arrow.Static = true
			expr = arrow
		default:
			expr = p.parseStaticAccessExpr(&ast.Ident{NamePos: staticPos, Name: "static"})
		}
		expr = p.continueExpression(expr, LOWEST)

		stmt := &ast.ExprStmt{Expr: expr}
		p.skipWhitespace()
		if p.curTokenIs(token.SEMICOLON) {
			stmt.Semicolon = p.curPos()
			p.nextToken()
		}
		return stmt
	}

	staticStmt := &ast.StaticVarStmt{StaticPos: staticPos}

	for {
		staticVar := &ast.StaticVar{}
		if p.curTokenIs(token.T_VARIABLE) {
			staticVar.Var = p.parseVariable().(*ast.Variable)
		}

		p.skipWhitespace()
		if p.curTokenIs(token.EQUALS) {
			p.nextToken()
			p.skipWhitespace()
			staticVar.Default = p.parseExpression(LOWEST)
		}

		staticStmt.Vars = append(staticStmt.Vars, staticVar)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		staticStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'static' variable declaration")
	}

	return staticStmt
}

func (p *Parser) parseUnsetStmt() *ast.UnsetStmt {
	unsetStmt := &ast.UnsetStmt{UnsetPos: p.curPos()}
	p.nextToken() // skip unset
	p.skipWhitespace()

	if p.expectConditionOpen("'unset'") {
		for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			unsetStmt.Vars = append(unsetStmt.Vars, p.parseExpression(LOWEST))
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if p.curTokenIs(token.RPAREN) {
			unsetStmt.Rparen = p.curPos()
			p.nextToken()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", "'unset' list"))
		}
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		unsetStmt.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.expectSemicolonAfter("'unset' statement")
	}

	return unsetStmt
}

func (p *Parser) parseDeclareStmt() *ast.DeclareStmt {
	declareStmt := &ast.DeclareStmt{DeclarePos: p.curPos()}
	p.nextToken() // skip declare
	p.skipWhitespace()

	if p.expectConditionOpen("'declare'") {
		for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()

			directive := &ast.DeclareDirective{}
			if p.curTokenIs(token.T_STRING) {
				directive.Name = &ast.Ident{
					NamePos: p.curPos(),
					Name:    p.curToken.Literal,
				}
				p.nextToken()
			}

			p.skipWhitespace()
			if p.curTokenIs(token.EQUALS) {
				p.nextToken()
				p.skipWhitespace()
				directive.Value = p.parseExpression(LOWEST)
			}

			declareStmt.Directives = append(declareStmt.Directives, directive)
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		p.expectConditionClose("'declare' directives")
	}

	p.skipWhitespace()

	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else if p.curTokenIs(token.LBRACE) {
		declareStmt.Body = p.parseBlockStmt()
	} else if p.curTokenIs(token.COLON) {
		p.nextToken()
		declareStmt.Body = p.parseAltSyntaxBody(token.T_ENDDECLARE)
		if p.curTokenIs(token.T_ENDDECLARE) {
			p.nextToken()
			p.skipWhitespace()
			p.expectSemicolonAfter("'enddeclare'")
		}
	} else {
		p.expectSemicolonAfter("'declare' statement")
	}

	return declareStmt
}
