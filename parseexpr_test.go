package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func parseExprSExpr(t *testing.T, input string) string {
	t.Helper()
	tokens, err := Lex(input)
	be.Err(t, err, nil)
	e, err := NewParser(tokens).ParseExpression()
	be.Err(t, err, nil)
	return ExprToSExpr(e)
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "(integer 42)"},
		{"2.5", "(float 2.5)"},
		{"\"hello\"", "(string \"hello\")"},
		{"true", "(boolean true)"},
		{"false", "(boolean false)"},
		{"myVar", "(var \"myVar\")"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseBinaryOperations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2", "(binary \"+\" (integer 1) (integer 2))"},
		{"x == y", "(binary \"==\" (var \"x\") (var \"y\"))"},
		{"\"a\" + \"b\"", "(binary \"+\" (string \"a\") (string \"b\"))"},
		{"a != b", "(binary \"!=\" (var \"a\") (var \"b\"))"},
		{"a < b", "(binary \"<\" (var \"a\") (var \"b\"))"},
		{"a > b", "(binary \">\" (var \"a\") (var \"b\"))"},
		{"a <= b", "(binary \"<=\" (var \"a\") (var \"b\"))"},
		{"a >= b", "(binary \">=\" (var \"a\") (var \"b\"))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(binary \"+\" (integer 1) (binary \"*\" (integer 2) (integer 3)))"},
		{"1 * 2 + 3", "(binary \"+\" (binary \"*\" (integer 1) (integer 2)) (integer 3))"},
		{"(1 + 2) * 3", "(binary \"*\" (group (binary \"+\" (integer 1) (integer 2))) (integer 3))"},
		{"1 - 2 - 3", "(binary \"-\" (binary \"-\" (integer 1) (integer 2)) (integer 3))"},
		{"8 / 2 / 2", "(binary \"/\" (binary \"/\" (integer 8) (integer 2)) (integer 2))"},
		{"1 + 2 < 3 * 4", "(binary \"<\" (binary \"+\" (integer 1) (integer 2)) (binary \"*\" (integer 3) (integer 4)))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseLogicalOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a and b", "(logical \"and\" (var \"a\") (var \"b\"))"},
		{"a or b", "(logical \"or\" (var \"a\") (var \"b\"))"},
		{"a or b and c", "(logical \"or\" (var \"a\") (logical \"and\" (var \"b\") (var \"c\")))"},
		{"a and b or c and d", "(logical \"or\" (logical \"and\" (var \"a\") (var \"b\")) (logical \"and\" (var \"c\") (var \"d\")))"},
		{"a == b and c != d", "(logical \"and\" (binary \"==\" (var \"a\") (var \"b\")) (binary \"!=\" (var \"c\") (var \"d\")))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-5", "(unary \"-\" (integer 5))"},
		{"--5", "(unary \"-\" (unary \"-\" (integer 5)))"},
		{"-x + 1", "(binary \"+\" (unary \"-\" (var \"x\")) (integer 1))"},
		{"1 - -2", "(binary \"-\" (integer 1) (unary \"-\" (integer 2)))"},
		{"-(a + b)", "(unary \"-\" (group (binary \"+\" (var \"a\") (var \"b\"))))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseIndexing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x[0]", "(idx (var \"x\") (integer 0))"},
		{"a[0][1]", "(idx (idx (var \"a\") (integer 0)) (integer 1))"},
		{"xs[i + 1]", "(idx (var \"xs\") (binary \"+\" (var \"i\") (integer 1)))"},
		{"xs[0] + ys[1]", "(binary \"+\" (idx (var \"xs\") (integer 0)) (idx (var \"ys\") (integer 1)))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"f()", "(call (var \"f\"))"},
		{"f(1)", "(call (var \"f\") (integer 1))"},
		{"add(x, y)", "(call (var \"add\") (var \"x\") (var \"y\"))"},
		{"f(g(1), 2)", "(call (var \"f\") (call (var \"g\") (integer 1)) (integer 2))"},
		{"f() + 1", "(binary \"+\" (call (var \"f\")) (integer 1))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseMethodCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"xs.append(1)", "(method (var \"xs\") \"append\" (integer 1))"},
		{"xs.pop()", "(method (var \"xs\") \"pop\")"},
		{"xs.set(0, 5)", "(method (var \"xs\") \"set\" (integer 0) (integer 5))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestMethodCallsDoNotChain(t *testing.T) {
	_, err := exprSExpr("xs.pop().pop()")
	be.True(t, err != nil)
	be.Equal(t, err.Error(), "expected end of input, found \".\"")
}

func TestParseListLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[]", "(list)"},
		{"[1, 2, 3]", "(list (integer 1) (integer 2) (integer 3))"},
		{"[\"a\", \"b\"]", "(list (string \"a\") (string \"b\"))"},
		{"[[1], [2]]", "(list (list (integer 1)) (list (integer 2)))"},
		{"[1 + 2, x]", "(list (binary \"+\" (integer 1) (integer 2)) (var \"x\"))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestParseGrouping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(x)", "(group (var \"x\"))"},
		{"((1))", "(group (group (integer 1)))"},
		{"(1 + 2)", "(group (binary \"+\" (integer 1) (integer 2)))"},
	}

	for _, test := range tests {
		result := parseExprSExpr(t, test.input)
		be.Equal(t, result, test.expected)
	}
}

func TestComparisonDoesNotChain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a == b == c", "expected end of input, found \"==\""},
		{"1 < 2 < 3", "expected end of input, found \"<\""},
	}

	for _, test := range tests {
		_, err := exprSExpr(test.input)
		be.True(t, err != nil)
		be.Equal(t, err.Error(), test.expected)
	}
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "expected expression, found end of input"},
		{")", "expected expression, found \")\""},
		{"1 +", "expected expression, found end of input"},
		{"(1", "expected \")\", found end of input"},
		{"[1, ]", "expected expression, found \"]\""},
		{"xs.1()", "expected identifier, found 1"},
		{"f(1", "expected \")\", found end of input"},
		{"a[1", "expected \"]\", found end of input"},
	}

	for _, test := range tests {
		tokens, err := Lex(test.input)
		be.Err(t, err, nil)
		_, err = NewParser(tokens).ParseExpression()
		be.True(t, err != nil)
		be.Equal(t, err.Error(), test.expected)
	}
}
