// Package main is the entry point for the dataset-pricer server.
package main

import (
	"os"

	"github.com/donaldgifford/dataset-pricer/cmd/dataset-pricer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
