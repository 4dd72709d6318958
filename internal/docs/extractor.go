// Package docs builds a searchable documentation index for the toolkit's
// public functions: it extracts doc comments and signatures from Go
// source, parses the comments as Google-style docstrings, and mines usage
// examples from test files.
package docs

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FuncSymbol is an exported top-level function found in a source tree.
type FuncSymbol struct {
	Name      string
	Package   string
	Signature string
	Doc       string
	Dir       string
}

// Extractor parses Go source files and collects exported function symbols
// for later lookup by name.
type Extractor struct {
	mu      sync.Mutex
	symbols []FuncSymbol
}

// NewExtractor allocates a new instance.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ParseDirectory walks the provided directory recursively and parses every
// Go file it finds, one goroutine per directory. Vendor, testdata and
// hidden directories are skipped, as are test files.
func (e *Extractor) ParseDirectory(dir string) error {
	var dirs []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (name == "vendor" || name == "testdata" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	var g errgroup.Group
	for _, d := range dirs {
		g.Go(func() error { return e.parseDir(d) })
	}
	return g.Wait()
}

func (e *Extractor) parseDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		// Files that fail to parse are skipped rather than failing the
		// whole walk.
		e.parseFile(filepath.Join(dir, name), fset)
	}
	return nil
}

func (e *Extractor) parseFile(path string, fset *token.FileSet) {
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return
	}

	pkg := file.Name.Name
	dir := filepath.Dir(path)

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !fn.Name.IsExported() {
			continue
		}

		sym := FuncSymbol{
			Name:      fn.Name.Name,
			Package:   pkg,
			Signature: renderSignature(fset, fn),
			Dir:       dir,
		}
		if fn.Doc != nil {
			sym.Doc = fn.Doc.Text()
		}

		e.mu.Lock()
		e.symbols = append(e.symbols, sym)
		e.mu.Unlock()
	}
}

// Symbols returns every collected function symbol.
func (e *Extractor) Symbols() []FuncSymbol {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]FuncSymbol(nil), e.symbols...)
}

// renderSignature prints the declaration as "func Name(args) results".
func renderSignature(fset *token.FileSet, fn *ast.FuncDecl) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, fn.Type); err != nil {
		return "func " + fn.Name.Name + "(...)"
	}
	// printer renders the type as "func(args) results"; splice in the name.
	return "func " + fn.Name.Name + strings.TrimPrefix(buf.String(), "func")
}
