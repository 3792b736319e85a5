package parser

import (
	"strings"

	"github.com/phpfront/phpfront/ast"
	"github.com/phpfront/phpfront/perror"
	"github.com/phpfront/phpfront/token"
)

func (p *Parser) parseNamespaceDecl() *ast.NamespaceDecl {
	ns := &ast.NamespaceDecl{NamespacePos: p.curPos()}
	p.nextToken() // skip namespace
	p.skipWhitespace()

	// Parse namespace name
	if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) {
		ns.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	}

	p.skipWhitespace()

	// Bracketed namespace
	if p.curTokenIs(token.LBRACE) {
		ns.Bracketed = true
		ns.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}
			stmt := p.parseStatement()
			if stmt != nil {
				ns.Stmts = append(ns.Stmts, stmt)
			}
		}

		ns.Rbrace = p.curPos()
		p.nextToken()
	} else if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';' or '{'", "namespace declaration"))
	}

	return ns
}

func (p *Parser) parseUseDecl() *ast.UseDecl {
	use := &ast.UseDecl{UsePos: p.curPos()}
	p.nextToken() // skip use
	p.skipWhitespace()

	// Check for function or const
	if p.curTokenIs(token.T_FUNCTION) {
		use.Type = token.T_FUNCTION
		p.nextToken()
		p.skipWhitespace()
	} else if p.curTokenIs(token.T_CONST) {
		use.Type = token.T_CONST
		p.nextToken()
		p.skipWhitespace()
	}

	// Group use: `use Prefix\{Foo, Bar as Baz};`
	if (p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) || p.curTokenIs(token.T_NAME_FULLY_QUALIFIED)) &&
		p.peekTokenIs(token.LBRACE) {
		return p.parseGroupUseDecl(use)
	}

	// Parse use clauses
	for {
		clause := &ast.UseClause{}

		if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) ||
			p.curTokenIs(token.T_NAME_FULLY_QUALIFIED) {
			clause.Name = &ast.Ident{
				NamePos: p.curPos(),
				Name:    p.curToken.Literal,
			}
			p.nextToken()
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "an imported name"))
		}

		p.skipWhitespace()

		// Check for alias
		if p.curTokenIs(token.T_AS) {
			p.nextToken()
			p.skipWhitespace()
			if p.curTokenIs(token.T_STRING) {
				clause.Alias = &ast.Ident{
					NamePos: p.curPos(),
					Name:    p.curToken.Literal,
				}
				p.nextToken()
			}
		}

		use.Uses = append(use.Uses, clause)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		use.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "use declaration"))
	}

	return use
}

// parseGroupUseDecl parses the `Prefix\{...}` tail of a group-use
// declaration; use.UsePos and use.Type have already been set by the
// caller and the current token is the prefix name.
func (p *Parser) parseGroupUseDecl(use *ast.UseDecl) *ast.UseDecl {
	prefixLit := p.curToken.Literal
	if !strings.HasSuffix(prefixLit, "\\") {
		prefixLit += "\\"
	}
	use.GroupPrefix = &ast.Ident{NamePos: p.curPos(), Name: prefixLit}
	p.nextToken() // move onto {
	p.nextToken() // skip {
	p.skipWhitespace()

	if p.curTokenIs(token.RBRACE) {
		p.addError(perror.Unexpectedf(p.curSpan(), "empty group use declaration"))
	}

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		p.skipWhitespace()
		if p.curTokenIs(token.RBRACE) {
			break
		}

		clause := &ast.UseClause{}
		if p.curTokenIs(token.T_FUNCTION) {
			clause.Type = token.T_FUNCTION
			p.nextToken()
			p.skipWhitespace()
		} else if p.curTokenIs(token.T_CONST) {
			clause.Type = token.T_CONST
			p.nextToken()
			p.skipWhitespace()
		}

		if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) || p.curTokenIs(token.T_NAME_FULLY_QUALIFIED) {
			clause.Name = &ast.Ident{
				NamePos: p.curPos(),
				Name:    prefixLit + p.curToken.Literal,
			}
			p.nextToken()
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "an imported name"))
		}

		p.skipWhitespace()
		if p.curTokenIs(token.T_AS) {
			p.nextToken()
			p.skipWhitespace()
			if p.curTokenIs(token.T_STRING) {
				clause.Alias = &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal}
				p.nextToken()
			}
		}

		use.Uses = append(use.Uses, clause)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.RBRACE) {
		use.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'}'", "group use declaration"))
		p.synchronize(syncStatement)
	}
	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		use.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "group use declaration"))
	}

	return use
}

func (p *Parser) parseConstDecl() *ast.ConstDecl {
	constDecl := &ast.ConstDecl{ConstPos: p.curPos()}
	p.nextToken() // skip const
	p.skipWhitespace()

	for {
		spec := &ast.ConstSpec{}
		if p.curTokenIs(token.T_STRING) {
			spec.Name = &ast.Ident{
				NamePos: p.curPos(),
				Name:    p.curToken.Literal,
			}
			p.nextToken()
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "a constant name"))
		}

		p.skipWhitespace()
		if p.curTokenIs(token.EQUALS) {
			p.nextToken()
			p.skipWhitespace()
			spec.Value = p.parseExpression(LOWEST)
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'='", "constant name"))
		}

		constDecl.Consts = append(constDecl.Consts, spec)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		constDecl.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "const declaration"))
	}

	return constDecl
}

func (p *Parser) parseFunctionDecl() ast.Stmt {
	fn := &ast.FunctionDecl{FuncPos: p.curPos()}
	p.nextToken() // skip function
	p.skipWhitespace()

	// Check for reference
	if p.curTokenIs(token.AMPERSAND) {
		fn.ByRef = true
		p.nextToken()
		p.skipWhitespace()
	}

	// Function name
	if p.curTokenIs(token.T_STRING) {
		fn.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		return p.badDeclAt(perror.Expectedf(p.curSpan(), "a function name"))
	}

	p.skipWhitespace()

	// Parameters
	if p.curTokenIs(token.LPAREN) {
		fn.Params = p.parseParameterList()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'('", "function name"))
	}

	p.skipWhitespace()

	// Return type
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		p.skipWhitespace()
		fn.ReturnType = p.parseTypeExpr()
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		fn.Body = p.parseBlockStmt()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "function declaration"))
		p.synchronize(syncStatement)
	}

	return fn
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	p.nextToken() // skip (

	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		p.skipWhitespace()
		if p.curTokenIs(token.RPAREN) {
			break
		}

		param := &ast.Parameter{}

		// Attributes
		if p.curTokenIs(token.T_ATTRIBUTE) {
			param.Attrs = p.parseAttributeGroups()
			p.skipWhitespace()
		}

		// Visibility (for constructor promotion)
		if p.curTokenIs(token.T_PUBLIC) || p.curTokenIs(token.T_PROTECTED) || p.curTokenIs(token.T_PRIVATE) {
			param.Visibility = p.curToken.Type
			p.nextToken()
			p.skipWhitespace()
		}

		// Readonly
		if p.curTokenIs(token.T_READONLY) {
			param.Readonly = true
			p.nextToken()
			p.skipWhitespace()
		}

		// Type
		if p.isTypeName() {
			param.Type = p.parseTypeExpr()
			p.skipWhitespace()
		}

		// Reference
		if p.curTokenIs(token.AMPERSAND) {
			param.ByRef = true
			p.nextToken()
			p.skipWhitespace()
		}

		// Variadic
		if p.curTokenIs(token.T_ELLIPSIS) {
			param.Variadic = true
			p.nextToken()
			p.skipWhitespace()
		}

		// Variable
		if p.curTokenIs(token.T_VARIABLE) {
			param.Var = p.parseVariable().(*ast.Variable)
		}

		p.skipWhitespace()

		// Default value
		if p.curTokenIs(token.EQUALS) {
			p.nextToken()
			p.skipWhitespace()
			param.Default = p.parseExpression(LOWEST)
		}

		params = append(params, param)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", "parameter list"))
	}

	return params
}

func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	typeExpr := &ast.TypeExpr{StartPos: p.curPos()}

	// Nullable
	if p.curTokenIs(token.QUESTION) {
		typeExpr.Nullable = true
		p.nextToken()
		p.skipWhitespace()
	}

	typeExpr.Type = p.parseType()

	if typeExpr.Nullable {
		switch typeExpr.Type.(type) {
		case *ast.UnionType, *ast.IntersectionType:
			p.addError(perror.Unexpectedf(p.curSpan(), "'?' cannot be combined with a union or intersection type"))
		}
	}

	return typeExpr
}

func (p *Parser) parseType() ast.Type {
	// Parse first type (possibly a parenthesized DNF intersection)
	first := p.parseTypeAtom()
	p.skipWhitespace()

	// Check for union or intersection
	if p.curTokenIs(token.PIPE) {
		union := &ast.UnionType{Types: []ast.Type{first}}
		for p.curTokenIs(token.PIPE) {
			p.nextToken()
			p.skipWhitespace()
			union.Types = append(union.Types, p.parseTypeAtom())
			p.skipWhitespace()
		}
		return union
	}

	if p.curTokenIs(token.AMPERSAND) {
		inter := &ast.IntersectionType{Types: []ast.Type{first}}
		for p.curTokenIs(token.AMPERSAND) {
			p.nextToken()
			p.skipWhitespace()
			inter.Types = append(inter.Types, p.parseTypeAtom())
			p.skipWhitespace()
		}
		return inter
	}

	return first
}

// parseTypeAtom parses a single type-union/intersection member: a
// plain name, or a parenthesized intersection `(A&B)` — the DNF
// disjunct form (PHP 8.2).
func (p *Parser) parseTypeAtom() ast.Type {
	if p.curTokenIs(token.LPAREN) {
		p.nextToken() // skip (
		p.skipWhitespace()

		first := p.parseSimpleType()
		p.skipWhitespace()

		inter := &ast.IntersectionType{Types: []ast.Type{first}}
		for p.curTokenIs(token.AMPERSAND) {
			p.nextToken()
			p.skipWhitespace()
			inter.Types = append(inter.Types, p.parseSimpleType())
			p.skipWhitespace()
		}

		if p.curTokenIs(token.RPAREN) {
			p.nextToken()
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", "DNF intersection type"))
		}

		return inter
	}
	return p.parseSimpleType()
}

func (p *Parser) parseSimpleType() *ast.SimpleType {
	typ := &ast.SimpleType{
		NamePos: p.curPos(),
		Name:    p.curToken.Literal,
	}
	p.nextToken()
	return typ
}

func (p *Parser) isTypeName() bool {
	switch p.curToken.Type {
	case token.T_STRING, token.T_NAME_QUALIFIED, token.T_NAME_FULLY_QUALIFIED,
		token.T_ARRAY, token.T_CALLABLE, token.QUESTION:
		return true
	default:
		return false
	}
}

func (p *Parser) parseClassDecl(modifiers *ast.ClassModifiers) ast.Stmt {
	class := &ast.ClassDecl{
		ClassPos:  p.curPos(),
		Modifiers: modifiers,
	}
	if class.Modifiers == nil {
		class.Modifiers = &ast.ClassModifiers{}
	}

	p.nextToken() // skip class
	p.skipWhitespace()

	// Class name
	if p.curTokenIs(token.T_STRING) {
		class.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		return p.badDeclAt(perror.Expectedf(p.curSpan(), "a class name"))
	}

	p.skipWhitespace()

	// Extends
	if p.curTokenIs(token.T_EXTENDS) {
		p.nextToken()
		p.skipWhitespace()
		class.Extends = p.parseExpression(LOWEST)
		p.skipWhitespace()
	}

	// Implements
	if p.curTokenIs(token.T_IMPLEMENTS) {
		p.nextToken()
		p.skipWhitespace()
		for {
			class.Implements = append(class.Implements, p.parseExpression(LOWEST))
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				p.skipWhitespace()
			} else {
				break
			}
		}
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		class.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}

			member := p.parseClassMember()
			if member != nil {
				class.Members = append(class.Members, member)
			}
		}

		class.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "class declaration"))
		p.synchronize(syncStatement)
	}

	return class
}

func (p *Parser) parseAbstractClass() ast.Stmt {
	p.nextToken() // skip abstract
	p.skipWhitespace()
	if p.curTokenIs(token.T_CLASS) {
		return p.parseClassDecl(&ast.ClassModifiers{Abstract: true})
	}
	return nil
}

func (p *Parser) parseFinalClass() ast.Stmt {
	p.nextToken() // skip final
	p.skipWhitespace()
	if p.curTokenIs(token.T_CLASS) {
		return p.parseClassDecl(&ast.ClassModifiers{Final: true})
	}
	return nil
}

func (p *Parser) parseReadonlyClass() ast.Stmt {
	p.nextToken() // skip readonly
	p.skipWhitespace()
	if p.curTokenIs(token.T_CLASS) {
		return p.parseClassDecl(&ast.ClassModifiers{Readonly: true})
	}
	return nil
}

// parseAsymmetricSet consumes a trailing `(set)` qualifier on a
// visibility modifier (e.g. `protected(set)`), reporting true and
// leaving the cursor past the `)` when one was present.
func (p *Parser) parseAsymmetricSet() bool {
	if !p.curTokenIs(token.LPAREN) || !p.peekTokenIs(token.T_STRING) || p.peekToken.Literal != "set" {
		return false
	}
	p.nextToken() // (
	p.nextToken() // set
	if p.curTokenIs(token.RPAREN) {
		p.nextToken()
		p.skipWhitespace()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "')'", "'set' in asymmetric visibility"))
	}
	return true
}

func (p *Parser) parseClassMember() ast.ClassMember {
	var attrs []*ast.AttributeGroup
	if p.curTokenIs(token.T_ATTRIBUTE) {
		attrs = p.parseAttributeGroups()
		p.skipWhitespace()
	}

	// Parse modifiers
	modifiers := &ast.PropertyModifiers{}
	methodMods := &ast.MethodModifiers{}
	constMods := &ast.ConstModifiers{}

	for {
		switch p.curToken.Type {
		case token.T_PUBLIC:
			modifiers.Public = true
			methodMods.Public = true
			constMods.Public = true
			p.nextToken()
			p.skipWhitespace()
			if p.parseAsymmetricSet() {
				modifiers.PublicSet = true
			}
			continue
		case token.T_PROTECTED:
			modifiers.Protected = true
			methodMods.Protected = true
			constMods.Protected = true
			p.nextToken()
			p.skipWhitespace()
			if p.parseAsymmetricSet() {
				modifiers.ProtectedSet = true
			}
			continue
		case token.T_PRIVATE:
			modifiers.Private = true
			methodMods.Private = true
			constMods.Private = true
			p.nextToken()
			p.skipWhitespace()
			if p.parseAsymmetricSet() {
				modifiers.PrivateSet = true
			}
			continue
		case token.T_STATIC:
			modifiers.Static = true
			methodMods.Static = true
		case token.T_READONLY:
			modifiers.Readonly = true
		case token.T_ABSTRACT:
			methodMods.Abstract = true
		case token.T_FINAL:
			methodMods.Final = true
			constMods.Final = true
		default:
			goto parseBody
		}
		p.nextToken()
		p.skipWhitespace()
	}

parseBody:
	switch p.curToken.Type {
	case token.T_CONST:
		return p.parseClassConstDecl(attrs, constMods)
	case token.T_FUNCTION:
		return p.parseMethodDecl(attrs, methodMods)
	case token.T_USE:
		return p.parseTraitUseDecl()
	case token.T_VARIABLE:
		return p.parsePropertyDecl(attrs, modifiers, nil)
	default:
		// Could be a typed property
		if p.isTypeName() {
			typeExpr := p.parseTypeExpr()
			p.skipWhitespace()
			if p.curTokenIs(token.T_VARIABLE) {
				return p.parsePropertyDecl(attrs, modifiers, typeExpr)
			}
		}
		p.addError(perror.Expectedf(p.curSpan(), "a class member"))
		p.synchronize(syncClassBody)
		return nil
	}
}

func (p *Parser) parseClassConstDecl(attrs []*ast.AttributeGroup, modifiers *ast.ConstModifiers) *ast.ClassConstDecl {
	constDecl := &ast.ClassConstDecl{
		Attrs:     attrs,
		Modifiers: modifiers,
		ConstPos:  p.curPos(),
	}
	p.nextToken() // skip const
	p.skipWhitespace()

	for {
		spec := &ast.ConstSpec{}
		if p.curTokenIs(token.T_STRING) {
			spec.Name = &ast.Ident{
				NamePos: p.curPos(),
				Name:    p.curToken.Literal,
			}
			p.nextToken()
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "a constant name"))
		}

		p.skipWhitespace()
		if p.curTokenIs(token.EQUALS) {
			p.nextToken()
			p.skipWhitespace()
			spec.Value = p.parseExpression(LOWEST)
		} else {
			p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'='", "constant name"))
		}

		constDecl.Consts = append(constDecl.Consts, spec)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		constDecl.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "class constant declaration"))
	}

	return constDecl
}

func (p *Parser) parseMethodDecl(attrs []*ast.AttributeGroup, modifiers *ast.MethodModifiers) *ast.MethodDecl {
	method := &ast.MethodDecl{
		Attrs:     attrs,
		Modifiers: modifiers,
		FuncPos:   p.curPos(),
	}
	p.nextToken() // skip function
	p.skipWhitespace()

	// Reference
	if p.curTokenIs(token.AMPERSAND) {
		method.ByRef = true
		p.nextToken()
		p.skipWhitespace()
	}

	// Name
	if p.curTokenIs(token.T_STRING) {
		method.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		p.addError(perror.Expectedf(p.curSpan(), "a method name"))
	}

	p.skipWhitespace()

	// Parameters
	if p.curTokenIs(token.LPAREN) {
		method.Params = p.parseParameterList()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'('", "method name"))
	}

	p.skipWhitespace()

	// Return type
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		p.skipWhitespace()
		method.ReturnType = p.parseTypeExpr()
	}

	p.skipWhitespace()

	// Body (or semicolon for abstract/interface)
	if p.curTokenIs(token.LBRACE) {
		method.Body = p.parseBlockStmt()
	} else if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{' or ';'", "method declaration"))
		p.synchronize(syncClassBody)
	}

	return method
}

func (p *Parser) parsePropertyDecl(attrs []*ast.AttributeGroup, modifiers *ast.PropertyModifiers, typeExpr *ast.TypeExpr) *ast.PropertyDecl {
	prop := &ast.PropertyDecl{
		Attrs:     attrs,
		Modifiers: modifiers,
		Type:      typeExpr,
	}

	var lastHadHooks bool
	for {
		item := &ast.PropertyItem{}
		if p.curTokenIs(token.T_VARIABLE) {
			item.Var = p.parseVariable().(*ast.Variable)
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "a property name"))
		}

		p.skipWhitespace()

		// Default value
		if p.curTokenIs(token.EQUALS) {
			p.nextToken()
			p.skipWhitespace()
			item.Default = p.parseExpression(LOWEST)
		}

		p.skipWhitespace()
		lastHadHooks = false
		if p.curTokenIs(token.LBRACE) {
			item.Hooks = p.parsePropertyHooks()
			lastHadHooks = true
		}

		prop.Props = append(prop.Props, item)
		p.skipWhitespace()

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	if p.curTokenIs(token.SEMICOLON) {
		prop.Semicolon = p.curPos()
		p.nextToken()
	} else if !lastHadHooks {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "property declaration"))
	}

	return prop
}

// parsePropertyHooks parses a PHP 8.4 property-hook body:
// `{ get => expr; set(Type $v) { ... } }`. Either hook may instead be
// abstract (bare `get;` / `set;`, legal only in interfaces).
func (p *Parser) parsePropertyHooks() *ast.PropertyHooks {
	hooks := &ast.PropertyHooks{Lbrace: p.curPos()}
	p.nextToken() // {
	p.skipWhitespace()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		hook := &ast.PropertyHook{}
		if p.curTokenIs(token.T_ATTRIBUTE) {
			hook.Attrs = p.parseAttributeGroups()
			p.skipWhitespace()
		}
		if p.curTokenIs(token.T_FINAL) {
			p.nextToken()
			p.skipWhitespace()
		}
		if p.curTokenIs(token.AMPERSAND) {
			hook.ByRef = true
			p.nextToken()
			p.skipWhitespace()
		}
		if !p.curTokenIs(token.T_STRING) {
			p.addError(perror.Expectedf(p.curSpan(), "'get' or 'set'"))
			p.synchronize(syncClassBody)
			break
		}

		hook.Name = &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal}
		isSet := strings.EqualFold(p.curToken.Literal, "set")
		p.nextToken()
		p.skipWhitespace()

		if isSet && p.curTokenIs(token.LPAREN) {
			hook.Params = p.parseParameterList()
			p.skipWhitespace()
		}

		switch {
		case p.curTokenIs(token.T_DOUBLE_ARROW):
			p.nextToken()
			p.skipWhitespace()
			expr := p.parseExpression(LOWEST)
			hook.Body = &ast.ExprStmt{Expr: expr}
			if p.curTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
		case p.curTokenIs(token.LBRACE):
			hook.Body = p.parseBlockStmt()
		case p.curTokenIs(token.SEMICOLON):
			p.nextToken() // abstract hook: no body
		default:
			p.addError(perror.Expectedf(p.curSpan(), "'=>', '{', or ';' after property hook"))
		}

		p.skipWhitespace()
		if isSet {
			hooks.Set = hook
		} else {
			hooks.Get = hook
		}
	}

	if p.curTokenIs(token.RBRACE) {
		hooks.Rbrace = p.curPos()
		p.nextToken()
	}
	return hooks
}

func (p *Parser) parseTraitUseDecl() *ast.TraitUseDecl {
	use := &ast.TraitUseDecl{UsePos: p.curPos()}
	p.nextToken() // skip use
	p.skipWhitespace()

	// Parse trait names
	for {
		if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) {
			use.Traits = append(use.Traits, &ast.Ident{
				NamePos: p.curPos(),
				Name:    p.curToken.Literal,
			})
			p.nextToken()
		}

		p.skipWhitespace()
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			p.skipWhitespace()
		} else {
			break
		}
	}

	// Adaptations
	if p.curTokenIs(token.LBRACE) {
		use.Lbrace = p.curPos()
		p.nextToken()
		p.skipWhitespace()
		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			adapt := p.parseTraitAdaptation()
			if adapt != nil {
				use.Adaptations = append(use.Adaptations, adapt)
			}
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}
		}
		use.Rbrace = p.curPos()
		if p.curTokenIs(token.RBRACE) {
			p.nextToken() // skip }
		}
	} else if p.curTokenIs(token.SEMICOLON) {
		use.Semicolon = p.curPos()
		p.nextToken()
	}

	return use
}

// parseTraitAdaptation parses a single `as`/`insteadof` clause inside a
// `use Trait { ... }` adaptation block: `(Trait::)?method insteadof A, B;`
// or `(Trait::)?method as [visibility] [alias];`.
func (p *Parser) parseTraitAdaptation() *ast.TraitAdaptation {
	adapt := &ast.TraitAdaptation{}

	if !p.curTokenIs(token.T_STRING) && !p.curTokenIs(token.T_NAME_QUALIFIED) {
		p.addError(perror.Expectedf(p.curSpan(), "trait method reference"))
		p.synchronize(syncExpression)
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return nil
	}

	first := &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal}
	p.nextToken()
	p.skipWhitespace()

	if p.curTokenIs(token.T_PAAMAYIM_NEKUDOTAYIM) {
		adapt.Trait = first
		p.nextToken()
		p.skipWhitespace()
		if p.curTokenIs(token.T_STRING) {
			adapt.Method = &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal}
			p.nextToken()
		} else {
			p.addError(perror.Expectedf(p.curSpan(), "method name after '::' in trait adaptation"))
		}
	} else {
		adapt.Method = first
	}

	p.skipWhitespace()

	switch {
	case p.curTokenIs(token.T_INSTEADOF):
		p.nextToken()
		p.skipWhitespace()
		for {
			if p.curTokenIs(token.T_STRING) || p.curTokenIs(token.T_NAME_QUALIFIED) {
				adapt.Insteadof = append(adapt.Insteadof, &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal})
				p.nextToken()
			}
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				p.skipWhitespace()
				continue
			}
			break
		}
	case p.curTokenIs(token.T_AS):
		p.nextToken()
		p.skipWhitespace()
		switch p.curToken.Type {
		case token.T_PUBLIC, token.T_PROTECTED, token.T_PRIVATE:
			adapt.Visibility = p.curToken.Type
			p.nextToken()
			p.skipWhitespace()
		}
		if p.curTokenIs(token.T_STRING) {
			adapt.Alias = &ast.Ident{NamePos: p.curPos(), Name: p.curToken.Literal}
			p.nextToken()
		}
	default:
		p.addError(perror.Expectedf(p.curSpan(), "'as' or 'insteadof' in trait adaptation"))
	}

	p.skipWhitespace()
	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "trait adaptation"))
		p.synchronize(syncExpression)
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}

	return adapt
}

func (p *Parser) parseInterfaceDecl() ast.Stmt {
	iface := &ast.InterfaceDecl{InterfacePos: p.curPos()}
	p.nextToken() // skip interface
	p.skipWhitespace()

	// Name
	if p.curTokenIs(token.T_STRING) {
		iface.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		return p.badDeclAt(perror.Expectedf(p.curSpan(), "an interface name"))
	}

	p.skipWhitespace()

	// Extends
	if p.curTokenIs(token.T_EXTENDS) {
		p.nextToken()
		p.skipWhitespace()
		for {
			iface.Extends = append(iface.Extends, p.parseExpression(LOWEST))
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				p.skipWhitespace()
			} else {
				break
			}
		}
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		iface.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}

			member := p.parseClassMember()
			if member != nil {
				iface.Members = append(iface.Members, member)
			}
		}

		iface.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "interface declaration"))
		p.synchronize(syncStatement)
	}

	return iface
}

func (p *Parser) parseTraitDecl() ast.Stmt {
	trait := &ast.TraitDecl{TraitPos: p.curPos()}
	p.nextToken() // skip trait
	p.skipWhitespace()

	// Name
	if p.curTokenIs(token.T_STRING) {
		trait.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		return p.badDeclAt(perror.Expectedf(p.curSpan(), "a trait name"))
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		trait.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}

			member := p.parseClassMember()
			if member != nil {
				trait.Members = append(trait.Members, member)
			}
		}

		trait.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "trait declaration"))
		p.synchronize(syncStatement)
	}

	return trait
}

func (p *Parser) parseEnumDecl() ast.Stmt {
	enum := &ast.EnumDecl{EnumPos: p.curPos()}
	p.nextToken() // skip enum
	p.skipWhitespace()

	// Name
	if p.curTokenIs(token.T_STRING) {
		enum.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else {
		return p.badDeclAt(perror.Expectedf(p.curSpan(), "an enum name"))
	}

	p.skipWhitespace()

	// Backing type
	if p.curTokenIs(token.COLON) {
		p.nextToken()
		p.skipWhitespace()
		enum.BackingType = p.parseTypeExpr()
	}

	p.skipWhitespace()

	// Implements
	if p.curTokenIs(token.T_IMPLEMENTS) {
		p.nextToken()
		p.skipWhitespace()
		for {
			enum.Implements = append(enum.Implements, p.parseExpression(LOWEST))
			p.skipWhitespace()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
				p.skipWhitespace()
			} else {
				break
			}
		}
	}

	p.skipWhitespace()

	// Body
	if p.curTokenIs(token.LBRACE) {
		enum.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}

			// Parse case or method
			if p.curTokenIs(token.T_CASE) {
				enum.Members = append(enum.Members, p.parseEnumCase())
			} else {
				member := p.parseClassMember()
				if member != nil {
					enum.Members = append(enum.Members, member)
				}
			}
		}

		enum.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "enum declaration"))
		p.synchronize(syncStatement)
	}

	return enum
}

func (p *Parser) parseEnumCase() *ast.EnumCaseDecl {
	caseDecl := &ast.EnumCaseDecl{CasePos: p.curPos()}
	p.nextToken() // skip case
	p.skipWhitespace()

	// Name
	if p.curTokenIs(token.T_STRING) {
		caseDecl.Name = &ast.Ident{
			NamePos: p.curPos(),
			Name:    p.curToken.Literal,
		}
		p.nextToken()
	} else if p.curTokenIs(token.T_CLASS) {
		// `class` stays reserved for ::class.
		p.addError(perror.Unexpectedf(p.curSpan(), "'class' cannot be used as an enum case name"))
		p.nextToken()
	} else {
		p.addError(perror.Expectedf(p.curSpan(), "an enum case name"))
	}

	p.skipWhitespace()

	// Value
	if p.curTokenIs(token.EQUALS) {
		p.nextToken()
		p.skipWhitespace()
		caseDecl.Value = p.parseExpression(LOWEST)
	}

	p.skipWhitespace()

	if p.curTokenIs(token.SEMICOLON) {
		caseDecl.Semicolon = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "';'", "enum case"))
	}

	return caseDecl
}

// parseAnonClassExpr parses the tail of `new class(...) extends Base
// implements Iface { ... }`. The cursor sits on `class`.
func (p *Parser) parseAnonClassExpr(newPos ast.Position, attrs []*ast.AttributeGroup) ast.Expr {
	anon := &ast.AnonClassExpr{
		NewPos:   newPos,
		Attrs:    attrs,
		ClassPos: p.curPos(),
	}
	p.nextToken() // skip class
	p.skipWhitespace()

	if p.curTokenIs(token.LPAREN) {
		anon.Args = p.parseArgumentList()
		p.skipWhitespace()
	}

	if p.curTokenIs(token.T_EXTENDS) {
		p.nextToken()
		p.skipWhitespace()
		anon.Extends = p.parseExpression(CALL)
		p.skipWhitespace()
	}

	if p.curTokenIs(token.T_IMPLEMENTS) {
		p.nextToken()
		p.skipWhitespace()
		for {
			anon.Implements = append(anon.Implements, p.parseExpression(CALL))
			p.skipWhitespace()
			if !p.curTokenIs(token.COMMA) {
				break
			}
			p.nextToken()
			p.skipWhitespace()
		}
	}

	if p.curTokenIs(token.LBRACE) {
		anon.Lbrace = p.curPos()
		p.nextToken()

		for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.skipWhitespace()
			if p.curTokenIs(token.RBRACE) {
				break
			}

			member := p.parseClassMember()
			if member != nil {
				anon.Members = append(anon.Members, member)
			}
		}

		anon.Rbrace = p.curPos()
		p.nextToken()
	} else {
		p.addError(perror.ExpectedAfterf(p.curSpan(), "%s after %s", "'{'", "anonymous class"))
		p.synchronize(syncStatement)
	}

	return anon
}
