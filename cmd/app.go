// Package cmd implements the CLI application to manage the store.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "overview")
	c.Register(&reportCmd{}, "overview")

	c.Register(&productsCmd{}, "catalog")
	c.Register(&productAddCmd{}, "catalog")
	c.Register(&productEditCmd{}, "catalog")
	c.Register(&productDelCmd{}, "catalog")

	c.Register(&sellCmd{}, "movements")
	c.Register(&salesCmd{}, "movements")
	c.Register(&buyCmd{}, "movements")
	c.Register(&purchasesCmd{}, "movements")

	c.Register(&customersCmd{}, "customers")
	c.Register(&customerAddCmd{}, "customers")
	c.Register(&customerDelCmd{}, "customers")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var storePath = flag.String("store-path", ".lj", "Path to the store data folder")

// openStore opens the store backing the whole application.
func openStore() (*store.Store, error) {
	if _, err := os.Stat(*storePath); os.IsNotExist(err) {
		log.Printf("warning, store %q does not exist yet, starting from the seed catalog", *storePath)
	}
	return store.Open(store.NewDirStorage(*storePath))
}

// fail prints an error to stderr and returns the failure status, so command
// Execute bodies stay one-liners on the error paths.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is still readable, so print it as-is.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

// findProduct resolves a product by id or, failing that, by SKU.
func findProduct(s *store.Store, key string) *store.Product {
	if p := s.FindProduct(key); p != nil {
		return p
	}
	for _, p := range s.Products() {
		if p.SKU == key {
			return &p
		}
	}
	return nil
}
