package store

import (
	"strings"
	"testing"
)

const priceList = `{
	"fornecedor": "Decor Ltda",
	"produtos": [
		{"codigo": "HOME-005", "descricao": "Luminária LED", "custo": 40, "venda": 95},
		{"codigo": "HOME-010", "descricao": "Vaso Cerâmica", "custo": 18.5, "venda": 39.9},
		{"codigo": "HOME-011", "descricao": "Tapete", "custo": 60}
	]
}`

func TestImportCatalog(t *testing.T) {
	s := openTestStore(t)
	m := CatalogMapping{
		Items:     "$.produtos[*]",
		SKU:       "$.codigo",
		Name:      "$.descricao",
		UnitCost:  "$.custo",
		SalePrice: "$.venda",
	}

	added, updated, err := s.ImportCatalog(strings.NewReader(priceList), m, "Decor Ltda", Home)
	if err != nil {
		t.Fatal(err)
	}
	if added != 2 || updated != 1 {
		t.Fatalf("added %d, updated %d; want 2, 1", added, updated)
	}

	// HOME-005 existed: cost and supplier refresh, stock and sale price stay.
	existing := s.FindProduct("2")
	if !existing.PurchasePrice.Equal(M(40)) || existing.Supplier != "Decor Ltda" {
		t.Errorf("existing product not repriced: %+v", existing)
	}
	if existing.Stock != 5 || !existing.SalePrice.Equal(M(99)) {
		t.Errorf("existing product was rewritten beyond cost and supplier: %+v", existing)
	}

	// HOME-010 is new with its own sale price, zero stock, today's entry date.
	products := s.Products()
	var vaso, tapete *Product
	for i := range products {
		switch products[i].SKU {
		case "HOME-010":
			vaso = &products[i]
		case "HOME-011":
			tapete = &products[i]
		}
	}
	if vaso == nil || tapete == nil {
		t.Fatal("imported products missing from the catalog")
	}
	if vaso.Stock != 0 || !vaso.PurchasePrice.Equal(M(18.5)) || !vaso.SalePrice.Equal(M(39.9)) || vaso.Category != Home {
		t.Errorf("vaso = %+v", vaso)
	}
	if vaso.ID == "" || vaso.EntryDate.IsZero() {
		t.Errorf("imported product missing id or entry date: %+v", vaso)
	}
	// HOME-011 has no sale price in the list: it falls back to the cost.
	if !tapete.SalePrice.Equal(M(60)) {
		t.Errorf("tapete salePrice = %s, want the unit cost", tapete.SalePrice.Amount())
	}
}

func TestImportCatalog_persistsOnce(t *testing.T) {
	s := openTestStore(t)
	m := CatalogMapping{Items: "$.produtos[*]", SKU: "$.codigo", Name: "$.descricao", UnitCost: "$.custo"}
	if _, _, err := s.ImportCatalog(strings.NewReader(priceList), m, "Decor Ltda", Home); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(s.storage)
	if err != nil {
		t.Fatal(err)
	}
	if len(reopened.Products()) != 4 {
		t.Errorf("reopened catalog has %d products, want 4", len(reopened.Products()))
	}
}

func TestImportCatalog_badDocument(t *testing.T) {
	s := openTestStore(t)
	m := CatalogMapping{Items: "$.produtos[*]", SKU: "$.codigo", Name: "$.descricao", UnitCost: "$.custo"}

	if _, _, err := s.ImportCatalog(strings.NewReader("not json"), m, "X", Other); err == nil {
		t.Error("want an error for a malformed document")
	}
	if _, _, err := s.ImportCatalog(strings.NewReader(`{"produtos":[{"codigo":"A"}]}`), m, "X", Other); err == nil {
		t.Error("want an error when a field path has no value")
	}
	if _, _, err := s.ImportCatalog(strings.NewReader(`{"produtos":[{"codigo":"A","descricao":"A","custo":-5}]}`), m, "X", Other); err == nil {
		t.Error("want an error for a negative cost")
	}
	if len(s.Products()) != 2 {
		t.Errorf("failed imports must not grow the catalog, got %d products", len(s.Products()))
	}
}
