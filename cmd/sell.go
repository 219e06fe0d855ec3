package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

type sellCmd struct {
	id       string
	qty      string
	method   string
	customer string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `lj sell -id <id|sku> -qty <n> -method <payment> [-customer <id>]

  Records a sale at the product's current sale price and decrements the
  stock. A sale of more units than are in stock is refused.

Usage Example:
$ lj sell -id ELET-001 -qty 2 -method PIX
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id or SKU.")
	f.StringVar(&c.qty, "qty", "1", "Units sold.")
	f.StringVar(&c.method, "method", "", "One of: Dinheiro, Transferência, Cartão, PIX.")
	f.StringVar(&c.customer, "customer", "", "Customer id; empty for a walk-in sale.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := store.ParseQuantity(c.qty)
	if err != nil {
		return fail("invalid quantity: %v", err)
	}
	method, err := store.ParsePaymentMethod(c.method)
	if err != nil {
		return fail("%v", err)
	}

	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	p := findProduct(s, c.id)
	if p == nil {
		return fail("no product %q", c.id)
	}

	sale, err := s.RecordSale(p.ID, qty, method, c.customer)
	var stockErr *store.InsufficientStockError
	if errors.As(err, &stockErr) {
		return fail("only %d of %q in stock, %d asked", stockErr.Available, p.Name, stockErr.Requested)
	}
	if err != nil {
		return fail("could not record the sale: %v", err)
	}

	fmt.Printf("Sold %d × %q for %s (profit %s)\n", sale.Quantity, p.Name, sale.TotalValue, sale.Profit)
	return subcommands.ExitSuccess
}
