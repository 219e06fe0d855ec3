package store

import (
	"errors"
	"testing"
	"time"
)

func TestOpen_seedsEmptyStore(t *testing.T) {
	s := openTestStore(t)

	products := s.Products()
	if len(products) != 2 {
		t.Fatalf("want the 2-product seed catalog, got %d products", len(products))
	}
	if products[0].Name != "Smartphone Pro Max" || products[1].Name != "Luminária LED" {
		t.Errorf("unexpected seed catalog: %q, %q", products[0].Name, products[1].Name)
	}
	if len(s.Sales()) != 0 || len(s.Purchases()) != 0 || len(s.Customers()) != 0 {
		t.Error("want three empty logs on a fresh store")
	}
}

func TestOpen_decodeFailure(t *testing.T) {
	storage := memStorage{keyProducts: []byte("not json")}
	if _, err := Open(storage); err == nil {
		t.Fatal("want an unrecoverable error on malformed stored data")
	}
}

func TestOpen_absentKeysYieldDefaults(t *testing.T) {
	// Only sales present; everything else falls back to its default.
	storage := memStorage{keySales: []byte(`[]`)}
	s, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Products()) != 2 {
		t.Errorf("want seed catalog, got %d products", len(s.Products()))
	}
}

func TestPersistRoundTrip(t *testing.T) {
	storage := memStorage{}
	s, err := Open(storage)
	if err != nil {
		t.Fatal(err)
	}
	s.now = func() time.Time { return testClock }

	if _, err := s.RecordPurchase("1", 5, M(3600), "NewSupplier"); err != nil {
		t.Fatal(err)
	}
	c, err := s.AddCustomer(Customer{Name: "Maria", Email: "maria@example.com", Phone: "11 99999-0000"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordSale("1", 3, Card, c.ID); err != nil {
		t.Fatal(err)
	}

	// Reopen from the same storage and persist again to a second storage:
	// the serialized state must be identical, key for key.
	reloaded, err := Open(storage)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := memStorage{}
	reloaded.storage = second
	if err := reloaded.persist(); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{keyProducts, keySales, keyPurchases, keyCustomers} {
		if string(storage[key]) != string(second[key]) {
			t.Errorf("key %q not stable across a load/persist cycle:\n first: %s\nsecond: %s", key, storage[key], second[key])
		}
	}
}

func TestRecordSale(t *testing.T) {
	s := openTestStore(t)

	// Seed product 1: stock 12, cost 3500, price 5000.
	sale, err := s.RecordSale("1", 3, Card, "")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if got := s.FindProduct("1").Stock; got != 9 {
		t.Errorf("stock = %d, want 9", got)
	}
	if !sale.TotalValue.Equal(M(15000)) {
		t.Errorf("totalValue = %s, want 15000", sale.TotalValue.Amount())
	}
	if !sale.Profit.Equal(M(4500)) {
		t.Errorf("profit = %s, want 4500", sale.Profit.Amount())
	}
	if sale.PaymentMethod != Card {
		t.Errorf("paymentMethod = %q, want %q", sale.PaymentMethod, Card)
	}
	if sale.CustomerID != "" {
		t.Errorf("want a walk-in sale, got customer %q", sale.CustomerID)
	}
	if sale.ID == "" {
		t.Error("sale id is missing")
	}

	sales := s.Sales()
	if len(sales) != 1 || sales[0].ID != sale.ID {
		t.Fatalf("want exactly the new sale in the log, got %d", len(sales))
	}

	// A second sale is prepended, keeping the log newest first.
	second, err := s.RecordSale("2", 1, Pix, "")
	if err != nil {
		t.Fatal(err)
	}
	sales = s.Sales()
	if len(sales) != 2 || sales[0].ID != second.ID {
		t.Error("want the newest sale first")
	}
}

func TestRecordSale_insufficientStock(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.RecordSale("1", 3, Card, ""); err != nil {
		t.Fatal(err)
	}
	// stock is 9 now; asking for 999 must be rejected with no state change.
	_, err := s.RecordSale("1", 999, Cash, "")
	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want *InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 9 {
		t.Errorf("available = %d, want 9", insufficient.Available)
	}
	if got := s.FindProduct("1").Stock; got != 9 {
		t.Errorf("stock mutated on a rejected sale: %d, want 9", got)
	}
	if len(s.Sales()) != 1 {
		t.Errorf("sale appended on a rejected operation: %d entries", len(s.Sales()))
	}
}

func TestRecordSale_preconditions(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.RecordSale("nope", 1, Cash, ""); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("unknown product: got %v, want ErrUnknownProduct", err)
	}
	if _, err := s.RecordSale("1", 0, Cash, ""); err == nil {
		t.Error("want a rejection for zero quantity")
	}
	if _, err := s.RecordSale("1", -2, Cash, ""); err == nil {
		t.Error("want a rejection for negative quantity")
	}
}

func TestRecordPurchase(t *testing.T) {
	s := openTestStore(t)

	purchase, err := s.RecordPurchase("1", 5, M(3600), "NewSupplier")
	if err != nil {
		t.Fatalf("RecordPurchase: %v", err)
	}

	p := s.FindProduct("1")
	if p.Stock != 17 {
		t.Errorf("stock = %d, want 17", p.Stock)
	}
	if !p.PurchasePrice.Equal(M(3600)) {
		t.Errorf("purchasePrice = %s, want 3600 (last-purchase-wins)", p.PurchasePrice.Amount())
	}
	if p.Supplier != "NewSupplier" {
		t.Errorf("supplier = %q, want %q", p.Supplier, "NewSupplier")
	}
	if !purchase.TotalCost.Equal(M(18000)) {
		t.Errorf("totalCost = %s, want 18000", purchase.TotalCost.Amount())
	}
	if len(s.Purchases()) != 1 {
		t.Fatalf("want exactly one purchase, got %d", len(s.Purchases()))
	}
}

func TestRecordPurchase_doesNotRewriteHistory(t *testing.T) {
	s := openTestStore(t)

	sale, err := s.RecordSale("1", 2, Cash, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordPurchase("1", 1, M(4000), "Other"); err != nil {
		t.Fatal(err)
	}
	// The sale snapshotted its profit at the old cost; the new purchase
	// terms only change the live catalog entry.
	if got := s.Sales()[0]; !got.Profit.Equal(sale.Profit) {
		t.Errorf("historical sale profit changed: %s, want %s", got.Profit.Amount(), sale.Profit.Amount())
	}
}

func TestRecordPurchase_preconditions(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.RecordPurchase("nope", 1, M(10), "X"); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("unknown product: got %v, want ErrUnknownProduct", err)
	}
	if _, err := s.RecordPurchase("1", 0, M(10), "X"); err == nil {
		t.Error("want a rejection for zero quantity")
	}
	if _, err := s.RecordPurchase("1", 1, M(-1), "X"); err == nil {
		t.Error("want a rejection for negative unit cost")
	}
}

func TestProductCRUD(t *testing.T) {
	s := openTestStore(t)

	p, err := s.AddProduct(Product{SKU: "VEST-001", Name: "Camiseta", Category: Clothing, PurchasePrice: M(20), SalePrice: M(49.9), Stock: 30, Supplier: "Malhas SA"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("AddProduct did not assign an id")
	}
	if p.EntryDate.IsZero() {
		t.Error("AddProduct did not fill the entry date")
	}

	p.SalePrice = M(59.9)
	if err := s.UpdateProduct(p); err != nil {
		t.Fatal(err)
	}
	if got := s.FindProduct(p.ID); !got.SalePrice.Equal(M(59.9)) {
		t.Errorf("salePrice = %s after update, want 59.9", got.SalePrice.Amount())
	}

	if err := s.UpdateProduct(Product{ID: "nope"}); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("update unknown: got %v, want ErrUnknownProduct", err)
	}

	if err := s.DeleteProduct(p.ID); err != nil {
		t.Fatal(err)
	}
	if s.FindProduct(p.ID) != nil {
		t.Error("product still present after delete")
	}
	if err := s.DeleteProduct(p.ID); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("delete unknown: got %v, want ErrUnknownProduct", err)
	}
}

func TestDeleteProduct_keepsHistory(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.RecordSale("2", 1, Cash, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteProduct("2"); err != nil {
		t.Fatal(err)
	}
	// The sale survives with a dangling reference, degraded at read time.
	entries := s.SalesLog()
	if len(entries) != 1 {
		t.Fatalf("sale dropped by catalog deletion: %d entries", len(entries))
	}
	if entries[0].ProductName != "Produto Removido" {
		t.Errorf("productName = %q, want the removed-product placeholder", entries[0].ProductName)
	}
}

func TestCustomerCRUD(t *testing.T) {
	s := openTestStore(t)

	c, err := s.AddCustomer(Customer{Name: "João", Email: "joao@example.com", Phone: "11 98888-0000"})
	if err != nil {
		t.Fatal(err)
	}
	if c.ID == "" {
		t.Error("AddCustomer did not assign an id")
	}

	c.Phone = "11 97777-0000"
	if err := s.UpdateCustomer(c); err != nil {
		t.Fatal(err)
	}
	if got := s.FindCustomer(c.ID); got.Phone != c.Phone {
		t.Errorf("phone = %q after update, want %q", got.Phone, c.Phone)
	}

	if err := s.DeleteCustomer(c.ID); err != nil {
		t.Fatal(err)
	}
	if s.FindCustomer(c.ID) != nil {
		t.Error("customer still present after delete")
	}
	if err := s.DeleteCustomer("nope"); !errors.Is(err, ErrUnknownCustomer) {
		t.Errorf("delete unknown: got %v, want ErrUnknownCustomer", err)
	}
}

func TestSearchProducts(t *testing.T) {
	s := openTestStore(t)
	testCases := []struct {
		query string
		want  int
	}{
		{query: "", want: 2},
		{query: "smartphone", want: 1},
		{query: "ELET", want: 1},
		{query: "lumi", want: 1},
		{query: "nothing", want: 0},
	}
	for _, tc := range testCases {
		if got := len(s.SearchProducts(tc.query)); got != tc.want {
			t.Errorf("SearchProducts(%q) returned %d products, want %d", tc.query, got, tc.want)
		}
	}
}
