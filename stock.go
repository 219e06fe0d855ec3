package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ljstore/store/date"
)

// This file holds the two operations that couple two collections in one
// logical transaction: a sale or a purchase always moves the referenced
// product's stock in the same state transition. Both are all-or-nothing;
// a precondition failure leaves no trace.

// InsufficientStockError rejects a sale exceeding the available stock.
// It carries the available quantity so the caller can surface it.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, only %d available", e.ProductID, e.Requested, e.Available)
}

// RecordSale appends a Sale and decrements the product's stock.
//
// TotalValue and Profit are computed from the product's current prices at
// the moment of sale; later price changes never alter them. customerID may
// be empty for a walk-in sale. The new sale is prepended, keeping the log
// newest first.
func (s *Store) RecordSale(productID string, quantity int, method PaymentMethod, customerID string) (Sale, error) {
	if quantity <= 0 {
		return Sale{}, fmt.Errorf("sale quantity must be positive, got %d", quantity)
	}
	idx := s.productIndex(productID)
	if idx < 0 {
		return Sale{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	p := &s.products[idx]
	if p.Stock < quantity {
		return Sale{}, &InsufficientStockError{ProductID: productID, Requested: quantity, Available: p.Stock}
	}

	sale := Sale{
		ID:            uuid.NewString(),
		ProductID:     productID,
		Quantity:      quantity,
		TotalValue:    p.SalePrice.MulInt(quantity),
		Profit:        p.SalePrice.Sub(p.PurchasePrice).MulInt(quantity),
		Date:          s.now(),
		PaymentMethod: method,
		CustomerID:    customerID,
	}
	s.sales = append([]Sale{sale}, s.sales...)
	p.Stock -= quantity

	if err := s.persist(); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// RecordPurchase appends a Purchase, increments the product's stock, and
// overwrites the product's purchase price and supplier with the new terms
// (last-purchase-wins). Prior sales and purchases are not retroactively
// touched. There is no upper bound on stock or cost.
func (s *Store) RecordPurchase(productID string, quantity int, unitCost Money, supplier string) (Purchase, error) {
	if quantity <= 0 {
		return Purchase{}, fmt.Errorf("purchase quantity must be positive, got %d", quantity)
	}
	if unitCost.IsNegative() {
		return Purchase{}, fmt.Errorf("purchase unit cost must not be negative, got %s", unitCost.Amount())
	}
	idx := s.productIndex(productID)
	if idx < 0 {
		return Purchase{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	p := &s.products[idx]

	purchase := Purchase{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		UnitCost:  unitCost,
		TotalCost: unitCost.MulInt(quantity),
		Date:      s.now(),
		Supplier:  supplier,
	}
	s.purchases = append([]Purchase{purchase}, s.purchases...)
	p.Stock += quantity
	p.PurchasePrice = unitCost
	p.Supplier = supplier

	if err := s.persist(); err != nil {
		return Purchase{}, err
	}
	return purchase, nil
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func today(now func() time.Time) date.Date { return date.Of(now()) }
