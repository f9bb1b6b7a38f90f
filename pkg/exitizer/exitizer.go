// Package exitizer reports direct os.Exit calls in the main function of package main.
package exitizer

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "exitizer",
	Doc:  "check for os.Exit calls in main function",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	checkForExitCalls := func(node ast.Node) {
		ast.Inspect(node, func(node ast.Node) bool {
			callExpr, isCallExpr := node.(*ast.CallExpr)
			if !isCallExpr {
				return true
			}

			if isOSExit(pass, callExpr) {
				pass.Reportf(callExpr.Pos(), "os.Exit call")
				return false
			}

			return true
		})
	}
	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if !strings.HasSuffix(filename, ".go") {
			continue
		}

		for _, decl := range file.Decls {
			funcdecl, ok := decl.(*ast.FuncDecl)
			if ok && funcdecl.Recv == nil && funcdecl.Name.Name == "main" && funcdecl.Body != nil {
				checkForExitCalls(funcdecl.Body)
			}
		}
	}

	return nil, nil
}

func isOSExit(pass *analysis.Pass, callExpr *ast.CallExpr) bool {
	selectorExpr, isSelectorExpr := callExpr.Fun.(*ast.SelectorExpr)
	if !isSelectorExpr {
		return false
	}

	fn, isFunc := pass.TypesInfo.Uses[selectorExpr.Sel].(*types.Func)
	if !isFunc || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
