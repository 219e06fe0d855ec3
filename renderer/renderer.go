// Package renderer formats store data as markdown, ready for the terminal
// renderer or for piping into a file.
package renderer

import (
	"time"

	"github.com/ljstore/store"
)

// saleTimestamp is how sale dates show up in listings.
const saleTimestamp = "02/01/2006 15:04"

func formatDay(t time.Time) string { return t.Format(saleTimestamp) }

func customerLabel(e store.SaleEntry) string {
	if e.CustomerName == "" {
		return "Consumidor final"
	}
	return e.CustomerName
}
