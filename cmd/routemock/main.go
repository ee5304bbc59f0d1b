// routemock CLI - compile and evaluate mock route matchers.
package main

import (
	"fmt"
	"os"

	"github.com/routemock/routemock/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
