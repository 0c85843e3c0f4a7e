package main

import (
	"os"

	"github.com/arthur-debert/svgset/cmd/svgset"
)

func main() {
	os.Exit(svgset.Execute())
}
