package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

type productAddCmd struct {
	sku      string
	name     string
	category string
	cost     string
	price    string
	stock    string
	supplier string
}

func (*productAddCmd) Name() string     { return "product-add" }
func (*productAddCmd) Synopsis() string { return "add a product to the catalog" }
func (*productAddCmd) Usage() string {
	return `lj product-add -sku <sku> -name <name> -category <category> -cost <cost> -price <price> [-stock <n>] [-supplier <name>]

  Adds a product. The entry date is today.

Usage Example:
$ lj product-add -sku ELET-002 -name "Fone Bluetooth" -category Eletrônicos -cost 120 -price 249.90 -stock 30
`
}

func (c *productAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sku, "sku", "", "Product SKU.")
	f.StringVar(&c.name, "name", "", "Product name.")
	f.StringVar(&c.category, "category", "", "One of: Eletrônicos, Vestuário, Casa, Beleza, Outros.")
	f.StringVar(&c.cost, "cost", "", "Purchase price per unit.")
	f.StringVar(&c.price, "price", "", "Sale price per unit.")
	f.StringVar(&c.stock, "stock", "0", "Initial stock.")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name.")
}

func (c *productAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sku, err := store.RequireText("sku", c.sku)
	if err != nil {
		return fail("%v", err)
	}
	name, err := store.RequireText("name", c.name)
	if err != nil {
		return fail("%v", err)
	}
	category, err := store.ParseCategory(c.category)
	if err != nil {
		return fail("%v", err)
	}
	cost, err := store.ParsePrice(c.cost)
	if err != nil {
		return fail("invalid cost: %v", err)
	}
	price, err := store.ParsePrice(c.price)
	if err != nil {
		return fail("invalid price: %v", err)
	}
	stock, err := store.ParseStock(c.stock)
	if err != nil {
		return fail("invalid stock: %v", err)
	}

	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}

	p, err := s.AddProduct(store.Product{
		SKU: sku, Name: name, Category: category,
		PurchasePrice: cost, SalePrice: price,
		Stock: stock, Supplier: c.supplier,
	})
	if err != nil {
		return fail("could not add the product: %v", err)
	}

	fmt.Printf("Added %q (%s) with id %s\n", p.Name, p.SKU, p.ID)
	return subcommands.ExitSuccess
}
