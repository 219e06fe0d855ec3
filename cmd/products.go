package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ljstore/store/renderer"
)

type productsCmd struct {
	query string
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "list the catalog" }
func (*productsCmd) Usage() string {
	return `lj products [-q <query>]

  Lists the catalog, optionally filtered by a case-insensitive match on
  name or SKU.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by name or SKU.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}

	products := s.Products()
	if c.query != "" {
		products = s.SearchProducts(c.query)
	}
	printMarkdown(renderer.ProductsMarkdown(products))
	return subcommands.ExitSuccess
}
