// Package main provides a multichecker binary combining standard, public and custom analyzers.
//
// The multichecker bundles:
//   - selected analyzers from golang.org/x/tools/go/analysis/passes;
//   - all SA-class analyzers from staticcheck.io;
//   - ST1000 (package naming) and S1000 (code simplification) from staticcheck.io;
//   - sqlrows, verifying sql.Rows handling around the PSQL storage;
//   - a custom analyzer forbidding direct os.Exit calls in main.
//
// Usage:
//
//	go run cmd/staticlint/main.go ./...
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"

	"github.com/gostaticanalysis/sqlrows/passes/sqlrows"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/Igbinosa-Christian/scissorapp/cmd/staticlint/customanalyzer"
)

func main() {
	analyzers := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		copylock.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		structtag.Analyzer,
		unreachable.Analyzer,
	}
	for _, v := range staticcheck.Analyzers {
		analyzers = append(analyzers, v.Analyzer)
	}
	for _, v := range stylecheck.Analyzers {
		if v.Analyzer.Name == "ST1000" {
			analyzers = append(analyzers, v.Analyzer)
		}
	}
	for _, v := range simple.Analyzers {
		if v.Analyzer.Name == "S1000" {
			analyzers = append(analyzers, v.Analyzer)
		}
	}
	analyzers = append(analyzers, sqlrows.Analyzer)
	analyzers = append(analyzers, customanalyzer.OsExitInMainAnalyzer)
	multichecker.Main(analyzers...)
}
