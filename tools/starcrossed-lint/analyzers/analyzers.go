// Package analyzers provides all custom static analyzers for starcrossed.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/starcrossed/tools/starcrossed-lint/analyzers/affectionwrite"
	"github.com/ersonp/starcrossed/tools/starcrossed-lint/analyzers/clockcall"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		affectionwrite.Analyzer,
		clockcall.Analyzer,
	}
}
