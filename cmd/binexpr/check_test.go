package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/simplify"
)

func writeExprFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestCheckFile_Valid(t *testing.T) {
	path := writeExprFile(t, t.TempDir(), "good.txt", "+ 1 2\n# comment\n* 1 + 0 5\n")

	result := checkFile(parser.NewParser(), simplify.NewSimplifier(), path)
	if !result.Valid {
		t.Fatalf("checkFile() reported errors: %+v", result.Errors)
	}
	if result.Expressions != 2 {
		t.Errorf("Expressions = %d, want 2", result.Expressions)
	}
}

func TestCheckFile_Invalid(t *testing.T) {
	path := writeExprFile(t, t.TempDir(), "bad.txt", "+ 1 2\n? 3 4\n/ 1 0\n")

	result := checkFile(parser.NewParser(), simplify.NewSimplifier(), path)
	if result.Valid {
		t.Fatal("checkFile() should report errors")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("got %d errors, want 2\nerrors: %+v", len(result.Errors), result.Errors)
	}

	if result.Errors[0].Line != 2 || result.Errors[0].Type != "invalid_operator" {
		t.Errorf("error 1 = %+v, want invalid_operator at line 2", result.Errors[0])
	}
	if result.Errors[1].Line != 3 || result.Errors[1].Type != "folding" {
		t.Errorf("error 2 = %+v, want folding at line 3", result.Errors[1])
	}
}

func TestCheckFile_Missing(t *testing.T) {
	result := checkFile(parser.NewParser(), simplify.NewSimplifier(),
		filepath.Join(t.TempDir(), "nope.txt"))
	if result.Valid {
		t.Error("checkFile() should fail for a missing file")
	}
}

func TestCheckResultSet_TextOutput(t *testing.T) {
	rs := checkResultSet{
		{File: "good.txt", Valid: true, Expressions: 3},
		{File: "bad.txt", Valid: false, Expressions: 1, Errors: []CheckError{
			{Line: 1, Expression: "? 1 2", Type: "invalid_operator", Message: "unsupported operator"},
		}},
	}

	out := rs.MarshalTextOutput()
	if !strings.Contains(out, "good.txt: OK (3 expressions)") {
		t.Errorf("output missing OK line:\n%s", out)
	}
	if !strings.Contains(out, "bad.txt: 1 error(s)") || !strings.Contains(out, "line 1:") {
		t.Errorf("output missing error lines:\n%s", out)
	}
}
