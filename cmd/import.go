package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
)

type importCmd struct {
	file     string
	supplier string
	category string
	mapping  store.CatalogMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a supplier price list" }
func (*importCmd) Usage() string {
	return `lj import -file <price list.json> -supplier <name> -category <category> -items <path> -sku <path> -name <path> -cost <path> [-price <path>]

  Merges a supplier JSON price list into the catalog. The -items path
  selects the list of entries; the field paths are jsonpath expressions
  evaluated against each entry. A known SKU updates the product's purchase
  price and supplier; an unknown SKU creates a product with zero stock.

Usage Example:
$ lj import -file lista.json -supplier "Decor Ltda" -category Casa \
    -items '$.produtos[*]' -sku '$.codigo' -name '$.descricao' -cost '$.custo'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Price list JSON file.")
	f.StringVar(&c.supplier, "supplier", "", "Supplier name recorded on every imported product.")
	f.StringVar(&c.category, "category", string(store.Other), "Category for created products.")
	f.StringVar(&c.mapping.Items, "items", "", "jsonpath to the list of entries.")
	f.StringVar(&c.mapping.SKU, "sku", "", "jsonpath to the SKU inside one entry.")
	f.StringVar(&c.mapping.Name, "name", "", "jsonpath to the product name.")
	f.StringVar(&c.mapping.UnitCost, "cost", "", "jsonpath to the unit cost.")
	f.StringVar(&c.mapping.SalePrice, "price", "", "jsonpath to the sale price. Defaults to the unit cost.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	supplier, err := store.RequireText("supplier", c.supplier)
	if err != nil {
		return fail("%v", err)
	}
	category, err := store.ParseCategory(c.category)
	if err != nil {
		return fail("%v", err)
	}

	in, err := os.Open(c.file)
	if err != nil {
		return fail("could not open %q: %v", c.file, err)
	}
	defer in.Close()

	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}

	added, updated, err := s.ImportCatalog(in, c.mapping, supplier, category)
	if err != nil {
		return fail("could not import: %v", err)
	}
	fmt.Printf("Imported %s: %d products added, %d updated\n", c.file, added, updated)
	return subcommands.ExitSuccess
}
