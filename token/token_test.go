package token

import "testing"

func TestLookupIdentCaseInsensitive(t *testing.T) {
	tests := []struct {
		ident    string
		expected Token
	}{
		{"if", T_IF},
		{"IF", T_IF},
		{"If", T_IF},
		{"ECHO", T_ECHO},
		{"Match", T_MATCH},
		{"FN", T_FN},
		{"Enum", T_ENUM},
		{"READONLY", T_READONLY},
		{"__halt_compiler", T_HALT_COMPILER},
		{"__HALT_COMPILER", T_HALT_COMPILER},
		{"__LINE__", T_LINE},
		{"__line__", T_LINE},
		{"__Namespace__", T_NS_C},
		{"die", T_EXIT},
		{"DIE", T_EXIT},
		{"exit", T_EXIT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.expected)
		}
	}
}

func TestLookupIdentPlainIdentifiers(t *testing.T) {
	for _, ident := range []string{"foo", "Echo2", "classes", "_if", "iff"} {
		if got := LookupIdent(ident); got != T_STRING {
			t.Errorf("LookupIdent(%q) = %s, want T_STRING", ident, got)
		}
	}
}

func TestOperatorTokenNames(t *testing.T) {
	tests := []struct {
		tok      Token
		expected string
	}{
		{T_PIPE, "T_PIPE"},
		{T_SPACESHIP, "T_SPACESHIP"},
		{T_COALESCE, "T_COALESCE"},
		{T_COALESCE_EQUAL, "T_COALESCE_EQUAL"},
		{T_NULLSAFE_OBJECT_OPERATOR, "T_NULLSAFE_OBJECT_OPERATOR"},
		{T_ELLIPSIS, "T_ELLIPSIS"},
		{T_POW, "T_POW"},
		{T_ATTRIBUTE, "T_ATTRIBUTE"},
		{T_DOLLAR_OPEN_CURLY_BRACES, "T_DOLLAR_OPEN_CURLY_BRACES"},
		{T_STRING_VARNAME, "T_STRING_VARNAME"},
		{SEMICOLON, ";"},
		{DOLLAR, "$"},
		{EOF, "EOF"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.expected {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.expected)
		}
	}
}

func TestIsMemberModifier(t *testing.T) {
	for _, tok := range []Token{T_PUBLIC, T_PROTECTED, T_PRIVATE, T_STATIC, T_ABSTRACT, T_FINAL, T_READONLY, T_VAR} {
		if !tok.IsMemberModifier() {
			t.Errorf("expected %s to be a member modifier", tok)
		}
	}
	for _, tok := range []Token{T_FUNCTION, T_CONST, T_CASE, T_STRING, T_CLASS, RBRACE} {
		if tok.IsMemberModifier() {
			t.Errorf("did not expect %s to be a member modifier", tok)
		}
	}
}

func TestTokenClassPredicates(t *testing.T) {
	if !T_IF.IsKeyword() || T_STRING.IsKeyword() {
		t.Error("keyword classification wrong for T_IF/T_STRING")
	}
	if !T_LNUMBER.IsLiteral() || T_IF.IsLiteral() {
		t.Error("literal classification wrong for T_LNUMBER/T_IF")
	}
	if !T_SPACESHIP.IsOperator() || T_VARIABLE.IsOperator() {
		t.Error("operator classification wrong for T_SPACESHIP/T_VARIABLE")
	}
}
