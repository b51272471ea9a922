package main

import (
	"os"

	"github.com/cwbudde/go-escript/cmd/escript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
