// Command enumerfix rewrites enumer-generated files to build errors with
// cockroachdb/errors instead of fmt.Errorf.
//
// Usage: enumerfix FILE...
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
)

const errorsImportPath = "github.com/cockroachdb/errors"

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix FILE...")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string) error {
	if len(files) == 0 {
		return ErrUsage
	}

	for _, path := range files {
		if err := fixFile(path); err != nil {
			return errors.Wrapf(err, "fixing %s", path)
		}
	}

	return nil
}

func fixFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	//nolint:gosec // G304: file path from CLI argument is expected
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	fixed, err := fix(src)
	if err != nil {
		return err
	}

	if bytes.Equal(fixed, src) {
		return nil
	}

	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// fix replaces every fmt.Errorf call with errors.Newf and adjusts the imports.
// Sources without fmt.Errorf are returned unchanged.
func fix(src []byte) ([]byte, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parsing file")
	}

	rewritten, fmtUsed := rewriteErrorf(file)
	if !rewritten {
		return src, nil
	}

	fixImports(file, fmtUsed)
	ast.SortImports(fset, file)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, errors.Wrap(err, "formatting file")
	}

	return buf.Bytes(), nil
}

// rewriteErrorf renames fmt.Errorf selectors. Reports whether anything was
// renamed and whether fmt is still referenced afterwards.
func rewriteErrorf(file *ast.File) (rewritten, fmtUsed bool) {
	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != "fmt" {
			return true
		}

		if sel.Sel.Name != "Errorf" {
			fmtUsed = true

			return true
		}

		pkg.Name = "errors"
		sel.Sel.Name = "Newf"
		rewritten = true

		return true
	})

	return rewritten, fmtUsed
}

// fixImports swaps the fmt import for the errors import, or adds the errors
// import next to fmt when fmt is still needed.
func fixImports(file *ast.File, fmtUsed bool) {
	errorsPath := strconv.Quote(errorsImportPath)

	for _, spec := range file.Imports {
		if spec.Path.Value == errorsPath {
			if !fmtUsed {
				removeImport(file, strconv.Quote("fmt"))
			}

			return
		}
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		for _, spec := range gen.Specs {
			imp, ok := spec.(*ast.ImportSpec)
			if !ok || imp.Path.Value != strconv.Quote("fmt") {
				continue
			}

			if !fmtUsed {
				imp.Path.Value = errorsPath

				return
			}

			added := &ast.ImportSpec{
				Path: &ast.BasicLit{ValuePos: imp.Path.Pos(), Kind: token.STRING, Value: errorsPath},
			}

			gen.Specs = append(gen.Specs, added)
			file.Imports = append(file.Imports, added)

			if !gen.Lparen.IsValid() {
				gen.Lparen = gen.Pos()
			}

			return
		}
	}
}

func removeImport(file *ast.File, path string) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		specs := gen.Specs[:0]

		for _, spec := range gen.Specs {
			if imp, ok := spec.(*ast.ImportSpec); ok && imp.Path.Value == path {
				continue
			}

			specs = append(specs, spec)
		}

		gen.Specs = specs
	}
}
