package store

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// csvHeader is the fixed header of the sales export.
const csvHeader = "ID,Data,Produto,Quantidade,Valor Total,Lucro"

// ExportSalesCSV writes the sales log as UTF-8 CSV, one row per sale in the
// in-memory order (newest first). The product name is always wrapped in
// double quotes, with embedded quotes doubled; a removed product exports as
// "---". Monetary columns are plain decimals.
//
// encoding/csv is deliberately not used: it quotes fields only when needed,
// while this format quotes the product name unconditionally.
func (s *Store) ExportSalesCSV(w io.Writer) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, sale := range s.sales {
		name := exportMissingLabel
		if p := s.FindProduct(sale.ProductID); p != nil {
			name = p.Name
		}
		row := strings.Join([]string{
			sale.ID,
			sale.Date.Format(time.RFC3339),
			quoteField(name),
			fmt.Sprintf("%d", sale.Quantity),
			sale.TotalValue.Amount(),
			sale.Profit.Amount(),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("could not write CSV row for sale %q: %w", sale.ID, err)
		}
	}
	return nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
