package main

import (
	"os"

	"github.com/conneroisu/stylekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
