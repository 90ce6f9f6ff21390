// Package main renders the dpctl command reference as markdown or man pages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/dataset-pricer/cmd/dpctl/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	if err := generate(cmd.Root(), *format, *output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("dpctl %s docs generated in %s/\n", *format, *output)
}

func generate(root *cobra.Command, format, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true

	switch format {
	case "markdown":
		return doc.GenMarkdownTree(root, dir)
	case "man":
		return doc.GenManTree(root, &doc.GenManHeader{
			Title:   "DPCTL",
			Section: "1",
			Source:  "dataset-pricer",
			Manual:  "dpctl manual",
		}, dir)
	default:
		return fmt.Errorf("unknown format %q (want markdown or man)", format)
	}
}
