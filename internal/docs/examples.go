package docs

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/edt-labs/edt/pkg/strutil"
)

// maxExamplesPerFunction caps how many mined snippets a single function
// keeps.
const maxExamplesPerFunction = 5

// Example is a usage snippet mined from a test file.
type Example struct {
	Code        string
	Description string
}

// ExtractExamples scans the _test.go files in dir for statements that call
// functionName and returns them as cleaned snippets. The description comes
// from the enclosing test's name. Files that fail to parse are skipped.
func ExtractExamples(dir, functionName string) []Example {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var examples []Example
	fset := token.NewFileSet()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}
		examples = append(examples, mineFile(fset, filepath.Join(dir, entry.Name()), functionName)...)
		if len(examples) >= maxExamplesPerFunction {
			break
		}
	}

	if len(examples) > maxExamplesPerFunction {
		examples = examples[:maxExamplesPerFunction]
	}
	return examples
}

func mineFile(fset *token.FileSet, path, functionName string) []Example {
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil
	}

	var examples []Example
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil || !strings.HasPrefix(fn.Name.Name, "Test") {
			continue
		}
		desc := describeTest(fn.Name.Name)
		for _, stmt := range fn.Body.List {
			if !callsFunction(stmt, functionName) {
				continue
			}
			code := renderStatement(fset, stmt)
			if code == "" {
				continue
			}
			examples = append(examples, Example{Code: code, Description: desc})
		}
	}
	return examples
}

// callsFunction reports whether the statement contains a call expression
// naming the function.
func callsFunction(stmt ast.Stmt, functionName string) bool {
	found := false
	ast.Inspect(stmt, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		switch fun := call.Fun.(type) {
		case *ast.Ident:
			if fun.Name == functionName {
				found = true
			}
		case *ast.SelectorExpr:
			if fun.Sel.Name == functionName {
				found = true
			}
		}
		return !found
	})
	return found
}

func renderStatement(fset *token.FileSet, stmt ast.Stmt) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, stmt); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

// describeTest turns "TestFlattenDeepNesting" into "flatten deep nesting".
func describeTest(name string) string {
	trimmed := strings.TrimPrefix(name, "Test")
	return strings.ToLower(strutil.Humanize(trimmed))
}
