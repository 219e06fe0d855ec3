package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

type productEditCmd struct {
	id       string
	name     string
	category string
	cost     string
	price    string
	stock    string
	supplier string
}

func (*productEditCmd) Name() string     { return "product-edit" }
func (*productEditCmd) Synopsis() string { return "edit a product" }
func (*productEditCmd) Usage() string {
	return `lj product-edit -id <id|sku> [-name <name>] [-category <category>] [-cost <cost>] [-price <price>] [-stock <n>] [-supplier <name>]

  Edits a product. Flags not given keep their current value.
`
}

func (c *productEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product id or SKU.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.cost, "cost", "", "New purchase price.")
	f.StringVar(&c.price, "price", "", "New sale price.")
	f.StringVar(&c.stock, "stock", "", "New stock level.")
	f.StringVar(&c.supplier, "supplier", "", "New supplier.")
}

func (c *productEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	p := findProduct(s, c.id)
	if p == nil {
		return fail("no product %q", c.id)
	}

	// Apply only the flags the user actually set.
	var applyErr error
	set := func(err error) {
		if applyErr == nil {
			applyErr = err
		}
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			name, err := store.RequireText("name", c.name)
			p.Name = name
			set(err)
		case "category":
			category, err := store.ParseCategory(c.category)
			p.Category = category
			set(err)
		case "cost":
			cost, err := store.ParsePrice(c.cost)
			p.PurchasePrice = cost
			set(err)
		case "price":
			price, err := store.ParsePrice(c.price)
			p.SalePrice = price
			set(err)
		case "stock":
			stock, err := store.ParseStock(c.stock)
			p.Stock = stock
			set(err)
		case "supplier":
			p.Supplier = c.supplier
		}
	})
	if applyErr != nil {
		return fail("%v", applyErr)
	}

	if err := s.UpdateProduct(*p); err != nil {
		return fail("could not update the product: %v", err)
	}
	fmt.Printf("Updated %q (%s)\n", p.Name, p.SKU)
	return subcommands.ExitSuccess
}
