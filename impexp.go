package store

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

// this file handles the supplier price-list import format.
// Suppliers ship price lists as JSON documents of wildly different shapes;
// instead of one decoder per supplier, the caller points at the fields with
// jsonpath expressions.

// CatalogMapping locates the product fields inside a supplier price list.
// Items selects the list of entries in the document; the field paths are
// evaluated against each entry.
type CatalogMapping struct {
	Items     string // jsonpath to the array of entries, e.g. "$.produtos[*]"
	SKU       string // jsonpath to the SKU inside one entry, e.g. "$.codigo"
	Name      string // jsonpath to the product name
	UnitCost  string // jsonpath to the unit cost
	SalePrice string // optional jsonpath to the sale price; new products fall back to the unit cost
}

// ImportCatalog reads a supplier price list from r and merges it into the
// catalog. An entry whose SKU already exists updates that product's purchase
// price and supplier (same last-purchase-wins policy as RecordPurchase,
// without a stock movement); an unknown SKU creates a product with zero
// stock in the given category. The store persists once, after the whole
// document merged.
func (s *Store) ImportCatalog(r io.Reader, m CatalogMapping, supplier string, category Category) (added, updated int, err error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return 0, 0, fmt.Errorf("could not parse price list: %w", err)
	}

	items, err := jsonpath.Get(m.Items, doc)
	if err != nil {
		return 0, 0, fmt.Errorf("could not locate entries at %q: %w", m.Items, err)
	}
	list, ok := items.([]any)
	if !ok {
		return 0, 0, fmt.Errorf("path %q does not select a list, got %T", m.Items, items)
	}

	bySKU := make(map[string]int, len(s.products))
	for i, p := range s.products {
		bySKU[p.SKU] = i
	}

	for n, entry := range list {
		sku, err := stringAt(entry, m.SKU)
		if err != nil {
			return 0, 0, fmt.Errorf("entry %d: %w", n, err)
		}
		name, err := stringAt(entry, m.Name)
		if err != nil {
			return 0, 0, fmt.Errorf("entry %d: %w", n, err)
		}
		cost, err := priceAt(entry, m.UnitCost)
		if err != nil {
			return 0, 0, fmt.Errorf("entry %d: %w", n, err)
		}

		if i, exists := bySKU[sku]; exists {
			s.products[i].PurchasePrice = cost
			s.products[i].Supplier = supplier
			updated++
			continue
		}

		price := cost
		if m.SalePrice != "" {
			if price, err = priceAt(entry, m.SalePrice); err != nil {
				return 0, 0, fmt.Errorf("entry %d: %w", n, err)
			}
		}
		p, err := s.addImported(Product{
			SKU:           sku,
			Name:          name,
			Category:      category,
			PurchasePrice: cost,
			SalePrice:     price,
			Supplier:      supplier,
		})
		if err != nil {
			return 0, 0, err
		}
		bySKU[p.SKU] = len(s.products) - 1
		added++
	}

	if err := s.persist(); err != nil {
		return 0, 0, err
	}
	return added, updated, nil
}

// addImported appends without persisting; ImportCatalog persists once at the end.
func (s *Store) addImported(p Product) (Product, error) {
	if p.PurchasePrice.IsNegative() || p.SalePrice.IsNegative() {
		return Product{}, fmt.Errorf("product %q: prices must not be negative", p.SKU)
	}
	p.ID = uuid.NewString()
	p.EntryDate = today(s.now)
	s.products = append(s.products, p)
	return p, nil
}

// stringAt evaluates a jsonpath against an entry and coerces the result to a string.
func stringAt(entry any, path string) (string, error) {
	v, err := valueAt(entry, path)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("path %q: want a string, got %T", path, v)
	}
	return str, nil
}

// priceAt evaluates a jsonpath against an entry and coerces the result to a
// non-negative Money.
func priceAt(entry any, path string) (Money, error) {
	v, err := valueAt(entry, path)
	if err != nil {
		return Money{}, err
	}
	num, ok := v.(float64)
	if !ok {
		return Money{}, fmt.Errorf("path %q: want a number, got %T", path, v)
	}
	m := M(num)
	if m.IsNegative() {
		return Money{}, fmt.Errorf("path %q: price must not be negative, got %v", path, num)
	}
	return m, nil
}

func valueAt(entry any, path string) (any, error) {
	v, err := jsonpath.Get(path, entry)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, fmt.Errorf("path %q: no value", path)
		}
		v = list[0]
	}
	return v, nil
}
