// Package store implements a single-user inventory and point-of-sale manager
// for a small retail shop: a product catalog, append-only sale and purchase
// logs, a customer list, and the reports derived from them.
//
// All state lives in a Store and persists to a string-keyed durable local
// storage as JSON, rewritten in full after every mutation. There is exactly
// one writer, so no locking exists anywhere.
package store

import (
	"fmt"
	"time"

	"github.com/ljstore/store/date"
)

// Category classifies a product in the catalog.
// The values are the Portuguese labels used on the wire and in all output.
type Category string

const (
	Electronics Category = "Eletrônicos"
	Clothing    Category = "Vestuário"
	Home        Category = "Casa"
	Beauty      Category = "Beleza"
	Other       Category = "Outros"
)

// Categories returns all known categories, in display order.
func Categories() []Category {
	return []Category{Electronics, Clothing, Home, Beauty, Other}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// PaymentMethod identifies how a sale was paid.
type PaymentMethod string

const (
	Cash     PaymentMethod = "Dinheiro"
	Transfer PaymentMethod = "Transferência"
	Card     PaymentMethod = "Cartão"
	Pix      PaymentMethod = "PIX"
)

// PaymentMethods returns all known payment methods, in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Cash, Transfer, Card, Pix}
}

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods() {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment method: %q", s)
}

// Product is a catalog entry. Stock never goes negative: the only operation
// that decreases it, RecordSale, rejects a sale exceeding the current stock.
type Product struct {
	ID            string    `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	PurchasePrice Money     `json:"purchasePrice"` // unit cost, overwritten by the latest purchase
	SalePrice     Money     `json:"salePrice"`
	Stock         int       `json:"stock"`
	Supplier      string    `json:"supplier"`
	EntryDate     date.Date `json:"entryDate"`
}

// Sale is one line of the append-only sales log. TotalValue and Profit are
// snapshotted from the product's prices at the moment of sale; later catalog
// edits never alter them. A Sale is created only through Store.RecordSale.
type Sale struct {
	ID            string        `json:"id"`
	ProductID     string        `json:"productId"` // weak reference, may dangle after catalog deletion
	Quantity      int           `json:"quantity"`
	TotalValue    Money         `json:"totalValue"`
	Profit        Money         `json:"profit"`
	Date          time.Time     `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CustomerID    string        `json:"customerId,omitempty"` // empty means a walk-in sale
}

// Day returns the calendar day on which the sale happened.
func (s Sale) Day() date.Date { return date.Of(s.Date) }

// Purchase is one line of the append-only purchases log. A Purchase is
// created only through Store.RecordPurchase, which also restocks the product
// and overwrites its purchase terms (last-purchase-wins).
type Purchase struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitCost  Money     `json:"unitCost"`
	TotalCost Money     `json:"totalCost"`
	Date      time.Time `json:"date"`
	Supplier  string    `json:"supplier"`
}

// Customer has an independent lifecycle; sales reference it optionally and
// never require it to exist.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
