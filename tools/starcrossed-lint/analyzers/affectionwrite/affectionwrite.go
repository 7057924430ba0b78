// Package affectionwrite detects writes to RelationshipRecord.Affection outside the ledger.
package affectionwrite

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
)

// ledgerPackage is the only package allowed to assign affection.
const ledgerPackage = "services"

// Analyzer detects writes to RelationshipRecord.Affection outside the ledger.
var Analyzer = &analysis.Analyzer{
	Name:     "affectionwrite",
	Doc:      "detects writes to RelationshipRecord.Affection outside the services package",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == ledgerPackage {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.IncDecStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		if isTestFile(pass, n.Pos()) {
			return
		}

		switch stmt := n.(type) {
		case *ast.AssignStmt:
			if stmt.Tok == token.DEFINE {
				return
			}
			for _, lhs := range stmt.Lhs {
				if isAffectionField(pass, lhs) {
					pass.Reportf(lhs.Pos(),
						"direct write to RelationshipRecord.Affection - use services.ApplyAffectionDelta")
				}
			}
		case *ast.IncDecStmt:
			if isAffectionField(pass, stmt.X) {
				pass.Reportf(stmt.X.Pos(),
					"direct write to RelationshipRecord.Affection - use services.ApplyAffectionDelta")
			}
		}
	})

	return nil, nil
}

// isAffectionField reports whether expr selects the Affection field of a RelationshipRecord.
func isAffectionField(pass *analysis.Pass, expr ast.Expr) bool {
	sel, ok := astutil.Unparen(expr).(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Affection" {
		return false
	}

	t := pass.TypesInfo.TypeOf(sel.X)
	if t == nil {
		return false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	return ok && named.Obj().Name() == "RelationshipRecord"
}

func isTestFile(pass *analysis.Pass, pos token.Pos) bool {
	return strings.HasSuffix(pass.Fset.Position(pos).Filename, "_test.go")
}
