// Package clockcall detects wall-clock reads in domain packages.
package clockcall

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects time.Now() calls in domain packages. Domain code takes
// the current time as a parameter or through an injected clock.
var Analyzer = &analysis.Analyzer{
	Name:     "clockcall",
	Doc:      "detects time.Now() calls in domain packages",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if !isDomainPackage(pass.Pkg.Path()) {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if strings.HasSuffix(pass.Fset.Position(call.Pos()).Filename, "_test.go") {
			return
		}
		if isTimeNow(pass, call.Fun) {
			pass.Reportf(call.Pos(), "time.Now() in domain code - take the time as a parameter or inject a clock")
		}
	})

	return nil, nil
}

func isDomainPackage(path string) bool {
	return strings.Contains(path, "/domain/") && !strings.HasSuffix(path, "/mocks")
}

func isTimeNow(pass *analysis.Pass, fun ast.Expr) bool {
	sel, ok := fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Now" {
		return false
	}
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "time"
}
