// Package main generates CLI reference documentation (markdown and man
// pages) from the cart-abandonment-notifier command tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/cart-abandonment-notifier/cmd/cart-abandonment-notifier/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated docs")
	format := flag.String("format", "markdown", "output format: markdown or man")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	var err error
	switch *format {
	case "markdown":
		err = doc.GenMarkdownTree(root, *output)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "CART-ABANDONMENT-NOTIFIER",
			Section: "1",
			Source:  "cart-abandonment-notifier " + cmd.Version,
			Manual:  "Cart Abandonment Notifier Manual",
		}, *output)
	default:
		log.Fatalf("unknown format %q (want markdown or man)", *format)
	}
	if err != nil {
		log.Fatalf("generating %s docs: %v", *format, err)
	}

	fmt.Printf("CLI %s docs generated in %s/\n", *format, *output)
}
