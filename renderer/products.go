package renderer

import (
	"bytes"
	"fmt"

	"github.com/ljstore/store"
	md "github.com/nao1215/markdown"
)

// ProductsMarkdown renders the catalog as one table.
func ProductsMarkdown(products []store.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Produtos")
	if len(products) == 0 {
		doc.PlainText("Nenhum produto cadastrado.")
		return doc.String()
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		stock := fmt.Sprintf("%d", p.Stock)
		if p.Stock == 0 {
			stock = md.Bold("0")
		}
		rows = append(rows, []string{
			p.SKU, p.Name, string(p.Category),
			p.PurchasePrice.String(), p.SalePrice.String(),
			stock, p.Supplier,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"SKU", "Nome", "Categoria", "Custo", "Venda", "Estoque", "Fornecedor"},
		Rows:   rows,
	})

	return doc.String()
}
