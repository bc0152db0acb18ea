// Command knapsack solves 0/1 knapsack instances.
//
//	knapsack solve [file] [--strategy auto|greedy|dp|bnb|ip] [--output text|json|yaml]
//	knapsack strategies
//
// The instance is read from file, or from stdin when file is omitted or "-".
// Settings come from --config (YAML), KNAPSACK_* environment variables and
// flags; see internal/config.
package main

import (
	"context"
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "knapsack:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
