// Package main is the entry point for the dpctl CLI client.
package main

import (
	"github.com/donaldgifford/dataset-pricer/cmd/dpctl/cmd"
)

func main() {
	cmd.Execute()
}
