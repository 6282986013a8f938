package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zeu5/gridworld/benchmarks"
)

// main entry point to the environment commands
func main() {
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
