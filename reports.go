package store

import (
	"slices"
	"sort"

	"github.com/ljstore/store/date"
)

// Derived views are pure reads over the current collections, recomputed on
// every call. Nothing here feeds back into the Store.

// lowStockThreshold is the stock level at or under which a product shows up
// in the stock alerts.
const lowStockThreshold = 5

// Placeholder labels for dangling product references.
const (
	unknownProductLabel = "Desconhecido"
	removedProductLabel = "Produto Removido"
	exportMissingLabel  = "---"
)

// DashboardStats is the top-of-dashboard summary.
type DashboardStats struct {
	InventoryValue Money // Σ stock × purchasePrice over the catalog
	StockCount     int   // Σ stock
	RevenueToday   Money
	ProfitToday    Money
	LowStock       int // products with 0 < stock ≤ 5
	OutOfStock     int // products with stock = 0
}

// Dashboard computes the dashboard summary, with "today" given by the caller.
func (s *Store) Dashboard(today date.Date) DashboardStats {
	var st DashboardStats
	for _, p := range s.products {
		st.InventoryValue = st.InventoryValue.Add(p.PurchasePrice.MulInt(p.Stock))
		st.StockCount += p.Stock
		switch {
		case p.Stock == 0:
			st.OutOfStock++
		case p.Stock <= lowStockThreshold:
			st.LowStock++
		}
	}
	for _, sale := range s.sales {
		if sale.Day() == today {
			st.RevenueToday = st.RevenueToday.Add(sale.TotalValue)
			st.ProfitToday = st.ProfitToday.Add(sale.Profit)
		}
	}
	return st
}

// DayBucket is one day of the weekly series.
type DayBucket struct {
	Day     date.Date
	Revenue Money
	Profit  Money
}

// WeeklySeries buckets sales over the 7 trailing calendar days ending on
// end, oldest first. Days without sales yield a zero bucket, not omission.
func (s *Store) WeeklySeries(end date.Date) []DayBucket {
	buckets := make([]DayBucket, 0, 7)
	for day := range end.Trailing(7) {
		buckets = append(buckets, DayBucket{Day: day})
	}
	for _, sale := range s.sales {
		day := sale.Day()
		for i := range buckets {
			if buckets[i].Day == day {
				buckets[i].Revenue = buckets[i].Revenue.Add(sale.TotalValue)
				buckets[i].Profit = buckets[i].Profit.Add(sale.Profit)
				break
			}
		}
	}
	return buckets
}

// LowStockRanking returns the products with stock at or under the alert
// threshold, lowest stock first, at most 5 of them.
func (s *Store) LowStockRanking() []Product {
	var low []Product
	for _, p := range s.products {
		if p.Stock <= lowStockThreshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	if len(low) > 5 {
		low = low[:5]
	}
	return low
}

// SellerRank is one row of the top-sellers ranking.
type SellerRank struct {
	ProductID string
	Name      string // resolved name, or a placeholder when the product is gone
	Quantity  int
}

// TopSellers groups sales by product, sums quantities, and returns the 5
// best sellers in descending order. Deleted products rank under a
// placeholder name.
func (s *Store) TopSellers() []SellerRank {
	sold := make(map[string]int)
	for _, sale := range s.sales {
		sold[sale.ProductID] += sale.Quantity
	}

	ids := make([]string, 0, len(sold))
	for id := range sold {
		ids = append(ids, id)
	}
	slices.Sort(ids) // deterministic order before ranking

	ranks := make([]SellerRank, 0, len(ids))
	for _, id := range ids {
		name := unknownProductLabel
		if p := s.FindProduct(id); p != nil {
			name = p.Name
		}
		ranks = append(ranks, SellerRank{ProductID: id, Name: name, Quantity: sold[id]})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Quantity > ranks[j].Quantity })
	if len(ranks) > 5 {
		ranks = ranks[:5]
	}
	return ranks
}

// Summary is the reports-page aggregate over the full history.
type Summary struct {
	TotalRevenue    Money
	TotalProfit     Money
	TotalInvestment Money // Σ purchase totalCost
	Margin          Percent
}

// Summarize folds the whole sales and purchases history. Margin is
// profit/revenue×100 and is defined as 0 when revenue is 0.
func (s *Store) Summarize() Summary {
	var sum Summary
	for _, sale := range s.sales {
		sum.TotalRevenue = sum.TotalRevenue.Add(sale.TotalValue)
		sum.TotalProfit = sum.TotalProfit.Add(sale.Profit)
	}
	for _, p := range s.purchases {
		sum.TotalInvestment = sum.TotalInvestment.Add(p.TotalCost)
	}
	if !sum.TotalRevenue.IsZero() {
		ratio := sum.TotalProfit.value.Div(sum.TotalRevenue.value)
		sum.Margin = Percent(100 * ratio.InexactFloat64())
	}
	return sum
}

// SaleEntry is a sale joined with its resolved product and customer names,
// for listings. Dangling references degrade to placeholders.
type SaleEntry struct {
	Sale
	ProductName  string
	CustomerName string // empty for walk-in sales
}

// SalesLog returns the sales newest first, with names resolved.
func (s *Store) SalesLog() []SaleEntry {
	entries := make([]SaleEntry, 0, len(s.sales))
	for _, sale := range s.sales {
		e := SaleEntry{Sale: sale, ProductName: removedProductLabel}
		if p := s.FindProduct(sale.ProductID); p != nil {
			e.ProductName = p.Name
		}
		if sale.CustomerID != "" {
			if c := s.FindCustomer(sale.CustomerID); c != nil {
				e.CustomerName = c.Name
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// PurchaseEntry is a purchase joined with its resolved product name.
type PurchaseEntry struct {
	Purchase
	ProductName string
}

// PurchasesLog returns the purchases newest first, with names resolved.
func (s *Store) PurchasesLog() []PurchaseEntry {
	entries := make([]PurchaseEntry, 0, len(s.purchases))
	for _, p := range s.purchases {
		e := PurchaseEntry{Purchase: p, ProductName: removedProductLabel}
		if prod := s.FindProduct(p.ProductID); prod != nil {
			e.ProductName = prod.Name
		}
		entries = append(entries, e)
	}
	return entries
}
