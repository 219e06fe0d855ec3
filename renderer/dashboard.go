package renderer

import (
	"bytes"
	"fmt"

	"github.com/ljstore/store"
	"github.com/ljstore/store/date"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the dashboard: the headline stats, the weekly
// revenue series and the stock alerts.
func DashboardMarkdown(today date.Date, stats store.DashboardStats, series []store.DayBucket, low []store.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Painel de %s", today))

	doc.Table(md.TableSet{
		Header: []string{"Indicador", "Valor"},
		Rows: [][]string{
			{"Valor em estoque", stats.InventoryValue.String()},
			{"Itens em estoque", fmt.Sprintf("%d", stats.StockCount)},
			{"Vendas de hoje", stats.RevenueToday.String()},
			{"Lucro de hoje", stats.ProfitToday.String()},
			{"Produtos com estoque baixo", fmt.Sprintf("%d", stats.LowStock)},
			{"Produtos esgotados", fmt.Sprintf("%d", stats.OutOfStock)},
		},
	})

	doc.H2("Últimos 7 dias")
	rows := make([][]string, 0, len(series))
	for _, b := range series {
		rows = append(rows, []string{b.Day.String(), b.Revenue.String(), b.Profit.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Dia", "Vendas", "Lucro"},
		Rows:   rows,
	})

	if len(low) > 0 {
		doc.H2("Alerta de estoque")
		rows = rows[:0]
		for _, p := range low {
			status := "estoque baixo"
			if p.Stock == 0 {
				status = md.Bold("esgotado")
			}
			rows = append(rows, []string{p.SKU, p.Name, fmt.Sprintf("%d", p.Stock), status})
		}
		doc.Table(md.TableSet{
			Header: []string{"SKU", "Produto", "Estoque", "Situação"},
			Rows:   rows,
		})
	}

	return doc.String()
}
