// Package schema extracts type declarations from Go source embedded at build
// time, so /schema can show the definition of each stored record kind.
package schema

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// Extract returns the source text of the named type declaration in src,
// including its doc comment. It returns "" when src does not declare typeName.
func Extract(src, typeName string) string {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return ""
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}

			start, end := gen.Pos(), gen.End()
			if gen.Lparen.IsValid() {
				start, end = ts.Pos(), ts.End()
				if ts.Doc != nil {
					start = ts.Doc.Pos()
				}
			} else if gen.Doc != nil {
				start = gen.Doc.Pos()
			}

			return src[fset.Position(start).Offset:fset.Position(end).Offset]
		}
	}
	return ""
}
