// Command rulelint validates rule document frontmatter, structure, and
// filenames. Exit status is 0 when no document produced findings, 1
// otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/promptstack/rulelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
