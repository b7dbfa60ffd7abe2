// Grounded on DMRHub's cmd/dmrhub/main.go: a thin entry point that builds
// the root cobra command and hands off.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gsm-bts/pager/internal/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	root := cmd.NewCommand(version, commit)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
