// Package main is the entry point for the cart-abandonment-notifier.
package main

import (
	"os"

	"github.com/donaldgifford/cart-abandonment-notifier/cmd/cart-abandonment-notifier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
