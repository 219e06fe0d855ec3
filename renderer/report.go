package renderer

import (
	"bytes"
	"fmt"

	"github.com/ljstore/store"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the all-time report: the financial summary and the
// top-sellers ranking.
func ReportMarkdown(sum store.Summary, top []store.SellerRank) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Relatório")

	doc.Table(md.TableSet{
		Header: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{"Receita total", sum.TotalRevenue.String()},
			{"Lucro total", sum.TotalProfit.String()},
			{"Investimento total", sum.TotalInvestment.String()},
			{"Margem de lucro", sum.Margin.String()},
		},
	})

	if len(top) > 0 {
		doc.H2("Produtos mais vendidos")
		rows := make([][]string, 0, len(top))
		for i, r := range top {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1), r.Name, fmt.Sprintf("%d", r.Quantity),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Produto", "Unidades"},
			Rows:   rows,
		})
	}

	return doc.String()
}
