package customanalyzer

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestOsExitInMainAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), OsExitInMainAnalyzer, "./...")
}
