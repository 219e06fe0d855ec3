package renderer

import (
	"bytes"
	"fmt"

	"github.com/ljstore/store"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the sales log, newest first.
func SalesMarkdown(entries []store.SaleEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Vendas")
	if len(entries) == 0 {
		doc.PlainText("Nenhuma venda registrada.")
		return doc.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatDay(e.Date), e.ProductName,
			fmt.Sprintf("%d", e.Quantity),
			e.TotalValue.String(), e.Profit.String(),
			string(e.PaymentMethod), customerLabel(e),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Produto", "Qtd", "Total", "Lucro", "Pagamento", "Cliente"},
		Rows:   rows,
	})

	return doc.String()
}

// PurchasesMarkdown renders the purchases log, newest first.
func PurchasesMarkdown(entries []store.PurchaseEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Compras")
	if len(entries) == 0 {
		doc.PlainText("Nenhuma compra registrada.")
		return doc.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatDay(e.Date), e.ProductName,
			fmt.Sprintf("%d", e.Quantity),
			e.UnitCost.String(), e.TotalCost.String(),
			e.Supplier,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Produto", "Qtd", "Custo Unit.", "Custo Total", "Fornecedor"},
		Rows:   rows,
	})

	return doc.String()
}
