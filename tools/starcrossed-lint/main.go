// starcrossed-lint is a custom static analyzer for starcrossed game-state rules.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/starcrossed/tools/starcrossed-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
