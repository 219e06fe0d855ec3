package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

type buyCmd struct {
	id       string
	qty      string
	cost     string
	supplier string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase and restock" }
func (*buyCmd) Usage() string {
	return `lj buy -id <id|sku> -qty <n> -cost <unit cost> [-supplier <name>]

  Adds the purchased quantity to the stock. The product's purchase price
  becomes the new unit cost and its supplier the purchase's supplier.

Usage Example:
$ lj buy -id ELET-001 -qty 5 -cost 3600 -supplier "Tech Solutions"
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id or SKU.")
	f.StringVar(&c.qty, "qty", "1", "Units bought.")
	f.StringVar(&c.cost, "cost", "", "Cost per unit.")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := store.ParseQuantity(c.qty)
	if err != nil {
		return fail("invalid quantity: %v", err)
	}
	cost, err := store.ParsePrice(c.cost)
	if err != nil {
		return fail("invalid cost: %v", err)
	}

	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	p := findProduct(s, c.id)
	if p == nil {
		return fail("no product %q", c.id)
	}

	purchase, err := s.RecordPurchase(p.ID, qty, cost, c.supplier)
	if err != nil {
		return fail("could not record the purchase: %v", err)
	}

	fmt.Printf("Bought %d × %q for %s, stock is now %d\n",
		purchase.Quantity, p.Name, purchase.TotalCost, p.Stock+purchase.Quantity)
	return subcommands.ExitSuccess
}
