package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/sievebench/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd("sievebench")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
