package main

import "testing"

func stmtSExpr(t *testing.T, input string) string {
	t.Helper()
	tokens, err := Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q): %v", input, err)
	}
	s, err := NewParser(tokens).ParseStatement()
	if err != nil {
		t.Fatalf("ParseStatement(%q): %v", input, err)
	}
	return StmtToSExpr(s)
}

func programSExpr(t *testing.T, input string) string {
	t.Helper()
	program, err := parseSource(input)
	if err != nil {
		t.Fatalf("parse(%q): %v", input, err)
	}
	return ProgramToSExpr(program)
}

func TestParseLetStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "let x : int = 5",
			expected: "(let \"x\" (type \"int\") (integer 5))",
		},
		{
			input:    "let pi : float = 3.14",
			expected: "(let \"pi\" (type \"float\") (float 3.14))",
		},
		{
			input:    "let s : string = \"hi\"",
			expected: "(let \"s\" (type \"string\") (string \"hi\"))",
		},
		{
			input:    "let ok : bool = true",
			expected: "(let \"ok\" (type \"bool\") (boolean true))",
		},
		{
			input:    "let xs : list<int> = []",
			expected: "(let \"xs\" (type \"list\" (type \"int\")) (list))",
		},
		{
			input:    "let m : list<list<int>> = [[1]]",
			expected: "(let \"m\" (type \"list\" (type \"list\" (type \"int\"))) (list (list (integer 1))))",
		},
		{
			input:    "let y : int = 2 + 3",
			expected: "(let \"y\" (type \"int\") (binary \"+\" (integer 2) (integer 3)))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParsePrintStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "print 42",
			expected: "(print (integer 42))",
		},
		{
			input:    "print 1 + 2",
			expected: "(print (binary \"+\" (integer 1) (integer 2)))",
		},
		{
			input:    "print \"hi\"",
			expected: "(print (string \"hi\"))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseIfStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "if true print 1 end",
			expected: "(if (boolean true) (block (print (integer 1))))",
		},
		{
			input:    "if x > 0 print x else print 0 end",
			expected: "(if (binary \">\" (var \"x\") (integer 0)) (block (print (var \"x\"))) (block (print (integer 0))))",
		},
		{
			input:    "if a and b print 1 end",
			expected: "(if (logical \"and\" (var \"a\") (var \"b\")) (block (print (integer 1))))",
		},
		{
			input:    "if true end",
			expected: "(if (boolean true) (block))",
		},
		{
			input:    "if a if b print 1 end end",
			expected: "(if (var \"a\") (block (if (var \"b\") (block (print (integer 1))))))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseWhileStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "while true print 1 end",
			expected: "(while (boolean true) (block (print (integer 1))))",
		},
		{
			input:    "while a < b print a end",
			expected: "(while (binary \"<\" (var \"a\") (var \"b\")) (block (print (var \"a\"))))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}

	input := "let x : int = 0 while x < 10 x = x + 1 end"
	expected := "(program (let \"x\" (type \"int\") (integer 0)) (while (binary \"<\" (var \"x\") (integer 10)) (block (assign \"x\" (binary \"+\" (var \"x\") (integer 1))))))"
	actual := programSExpr(t, input)
	if actual != expected {
		t.Errorf("Input: %q\nExpected: %s\nActual: %s", input, expected, actual)
	}
}

func TestParseForStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "for i : int = 0 .. 10 print i end",
			expected: "(for \"i\" (integer 0) (integer 10) (block (print (var \"i\"))))",
		},
		{
			input:    "for i : int = a .. b + 1 print i end",
			expected: "(for \"i\" (var \"a\") (binary \"+\" (var \"b\") (integer 1)) (block (print (var \"i\"))))",
		},
		{
			input:    "for i : int = 0 .. 3 i = 7 end",
			expected: "(for \"i\" (integer 0) (integer 3) (block (assign \"i\" (integer 7))))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseFnStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "fn foo() end",
			expected: "(fn \"foo\" (params) (block))",
		},
		{
			input:    "fn add(a : int, b : int) return a + b end",
			expected: "(fn \"add\" (params (param \"a\" (type \"int\")) (param \"b\" (type \"int\"))) (block (return (binary \"+\" (var \"a\") (var \"b\")))))",
		},
		{
			input:    "fn greet(name : string) print name end",
			expected: "(fn \"greet\" (params (param \"name\" (type \"string\"))) (block (print (var \"name\"))))",
		},
		{
			input:    "fn sum(xs : list<int>) return 0 end",
			expected: "(fn \"sum\" (params (param \"xs\" (type \"list\" (type \"int\")))) (block (return (integer 0))))",
		},
		{
			input:    "fn bump(a : int) a = a + 1 end",
			expected: "(fn \"bump\" (params (param \"a\" (type \"int\"))) (block (assign \"a\" (binary \"+\" (var \"a\") (integer 1)))))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseReturnStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "return",
			expected: "(return)",
		},
		{
			input:    "return 42",
			expected: "(return (integer 42))",
		},
		{
			input:    "return a + b",
			expected: "(return (binary \"+\" (var \"a\") (var \"b\")))",
		},
	}

	for _, test := range tests {
		actual := stmtSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseIdentifierStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "let x : int = 1 x = 2",
			expected: "(program (let \"x\" (type \"int\") (integer 1)) (assign \"x\" (integer 2)))",
		},
		{
			input:    "let xs : list<int> = [1] xs[0] = 2",
			expected: "(program (let \"xs\" (type \"list\" (type \"int\")) (list (integer 1))) (list-assign \"xs\" (integer 0) (integer 2)))",
		},
		{
			input:    "let xs : list<int> = [] xs.append(1)",
			expected: "(program (let \"xs\" (type \"list\" (type \"int\")) (list)) (method (var \"xs\") \"append\" (integer 1)))",
		},
		{
			input:    "f()",
			expected: "(program (call (var \"f\")))",
		},
		{
			input:    "let xs : list<int> = [1] print xs[0]",
			expected: "(program (let \"xs\" (type \"list\" (type \"int\")) (list (integer 1))) (print (idx (var \"xs\") (integer 0))))",
		},
		{
			input:    "let x : int = 1 x",
			expected: "(program (let \"x\" (type \"int\") (integer 1)) (var \"x\"))",
		},
		{
			input:    "let m : list<list<int>> = [[1]] m[0][0]",
			expected: "(program (let \"m\" (type \"list\" (type \"list\" (type \"int\"))) (list (list (integer 1)))) (idx (idx (var \"m\") (integer 0)) (integer 0)))",
		},
	}

	for _, test := range tests {
		actual := programSExpr(t, test.input)
		if actual != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, actual)
		}
	}
}

func TestParseProgram(t *testing.T) {
	input := "fn double(n : int) return n + n end let x : int = 3 print double(x)"
	expected := "(program " +
		"(fn \"double\" (params (param \"n\" (type \"int\"))) (block (return (binary \"+\" (var \"n\") (var \"n\"))))) " +
		"(let \"x\" (type \"int\") (integer 3)) " +
		"(print (call (var \"double\") (var \"x\"))))"

	actual := programSExpr(t, input)
	if actual != expected {
		t.Errorf("Input: %q\nExpected: %s\nActual: %s", input, expected, actual)
	}
}

func TestParseEmptyProgram(t *testing.T) {
	actual := programSExpr(t, "")
	if actual != "(program)" {
		t.Errorf("Expected: (program)\nActual: %s", actual)
	}
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "+",
			expected: "expected statement, found \"+\"",
		},
		{
			input:    "end",
			expected: "expected statement, found \"end\"",
		},
		{
			input:    "1 + 2",
			expected: "expected statement, found 1",
		},
		{
			input:    "let x int = 5",
			expected: "expected \":\", found int",
		},
		{
			input:    "let x : = 5",
			expected: "expected type, found \"=\"",
		},
		{
			input:    "let x : int 5",
			expected: "expected \"=\", found 5",
		},
		{
			input:    "if true print 1",
			expected: "expected \"end\", found end of input",
		},
		{
			input:    "while true print 1",
			expected: "expected \"end\", found end of input",
		},
		{
			input:    "for i : float = 0 .. 2 end",
			expected: "expected int, found float",
		},
		{
			input:    "for i = 0 .. 2 end",
			expected: "expected \":\", found \"=\"",
		},
		{
			input:    "for i : int = 0 10 end",
			expected: "expected \"..\", found 10",
		},
		{
			input:    "fn 5() end",
			expected: "expected identifier, found 5",
		},
		{
			input:    "fn f(a int) end",
			expected: "expected \":\", found int",
		},
		{
			input:    "let x : int = 1 x == 1 == 2",
			expected: "expected statement, found \"==\"",
		},
	}

	for _, test := range tests {
		_, err := parseSource(test.input)
		if err == nil {
			t.Errorf("Input: %q\nExpected error %q, got none", test.input, test.expected)
			continue
		}
		if err.Error() != test.expected {
			t.Errorf("Input: %q\nExpected: %s\nActual: %s", test.input, test.expected, err.Error())
		}
	}
}
