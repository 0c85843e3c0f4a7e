package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/svgset/cmd/svgset"
	"github.com/arthur-debert/svgset/internal/version"
)

func main() {
	rootCmd := svgset.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SVGSET",
		Section: "1",
		Source:  "svgset " + version.Version,
		Manual:  "svgset manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
