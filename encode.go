package store

import (
	"encoding/json"
	"fmt"

	"github.com/ljstore/store/date"
)

// The four collections persist under independent keys, each holding a JSON
// array of the record type. The "lj_" prefix namespaces them in the shared
// storage. There is no schema version field; format changes are not
// migration-safe.
const (
	keyProducts  = "lj_products"
	keySales     = "lj_sales"
	keyPurchases = "lj_purchases"
	keyCustomers = "lj_customers"
)

// seedCatalog is the default product list for a brand new store.
func seedCatalog() []Product {
	return []Product{
		{
			ID: "1", SKU: "ELET-001", Name: "Smartphone Pro Max",
			Category: Electronics, PurchasePrice: M(3500), SalePrice: M(5000),
			Stock: 12, Supplier: "Tech Solutions",
			EntryDate: date.New(2023, 10, 1),
		},
		{
			ID: "2", SKU: "HOME-005", Name: "Luminária LED",
			Category: Home, PurchasePrice: M(45), SalePrice: M(99),
			Stock: 5, Supplier: "Decor Ltda",
			EntryDate: date.New(2023, 11, 15),
		},
	}
}

// decodeCollection reads one key from storage. An absent key yields the
// default; a present key that does not decode is an unrecoverable error.
func decodeCollection[T any](s Storage, key string, def []T) ([]T, error) {
	data, ok, err := s.Read(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("could not decode key %q: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// encodeCollection serializes one collection back to its key.
func encodeCollection[T any](s Storage, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("could not encode key %q: %w", key, err)
	}
	return s.Write(key, data)
}
