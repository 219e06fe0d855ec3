package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type productDelCmd struct {
	id string
}

func (*productDelCmd) Name() string     { return "product-del" }
func (*productDelCmd) Synopsis() string { return "delete a product" }
func (*productDelCmd) Usage() string {
	return `lj product-del -id <id|sku>

  Deletes a product from the catalog. Its sales and purchases stay in the
  history and show up under a placeholder name from then on.
`
}

func (c *productDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id or SKU.")
}

func (c *productDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	p := findProduct(s, c.id)
	if p == nil {
		return fail("no product %q", c.id)
	}
	if err := s.DeleteProduct(p.ID); err != nil {
		return fail("could not delete the product: %v", err)
	}
	fmt.Printf("Deleted %q (%s)\n", p.Name, p.SKU)
	return subcommands.ExitSuccess
}
