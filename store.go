package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Errors reported by Store mutations.
var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrUnknownCustomer = errors.New("unknown customer")
)

// Store owns the four collections exclusively. It is constructed once at
// process start via Open and every mutation method re-serializes all four
// collections back to storage as its final step. Sales are newest first;
// purchases likewise.
type Store struct {
	storage   Storage
	products  []Product
	sales     []Sale
	purchases []Purchase
	customers []Customer

	now func() time.Time // clock, replaceable in tests
}

// Open loads the four collections from storage. An absent key yields its
// default: the empty list, except products which default to the seed
// catalog. A key that fails to decode aborts the startup.
func Open(storage Storage) (*Store, error) {
	s := &Store{storage: storage, now: time.Now}
	var err error
	if s.products, err = decodeCollection(storage, keyProducts, seedCatalog()); err != nil {
		return nil, err
	}
	if s.sales, err = decodeCollection(storage, keySales, []Sale{}); err != nil {
		return nil, err
	}
	if s.purchases, err = decodeCollection(storage, keyPurchases, []Purchase{}); err != nil {
		return nil, err
	}
	if s.customers, err = decodeCollection(storage, keyCustomers, []Customer{}); err != nil {
		return nil, err
	}
	return s, nil
}

// persist writes all four collections back to storage. It is the final step
// of every mutation; a failure propagates to the mutating caller.
func (s *Store) persist() error {
	if err := encodeCollection(s.storage, keyProducts, s.products); err != nil {
		return err
	}
	if err := encodeCollection(s.storage, keySales, s.sales); err != nil {
		return err
	}
	if err := encodeCollection(s.storage, keyPurchases, s.purchases); err != nil {
		return err
	}
	return encodeCollection(s.storage, keyCustomers, s.customers)
}

// Products returns a copy of the catalog.
func (s *Store) Products() []Product { return slices.Clone(s.products) }

// Sales returns a copy of the sales log, newest first.
func (s *Store) Sales() []Sale { return slices.Clone(s.sales) }

// Purchases returns a copy of the purchases log, newest first.
func (s *Store) Purchases() []Purchase { return slices.Clone(s.purchases) }

// Customers returns a copy of the customer list.
func (s *Store) Customers() []Customer { return slices.Clone(s.customers) }

// FindProduct returns a copy of the product with this id, or nil if unknown.
func (s *Store) FindProduct(id string) *Product {
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// FindCustomer returns a copy of the customer with this id, or nil if unknown.
func (s *Store) FindCustomer(id string) *Customer {
	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c
		}
	}
	return nil
}

// SearchProducts returns catalog entries whose name or SKU contains the
// query, case-insensitively. An empty query returns the whole catalog.
func (s *Store) SearchProducts(query string) []Product {
	if query == "" {
		return s.Products()
	}
	q := strings.ToLower(query)
	var out []Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct adds a product to the catalog. A missing id or entry date is
// filled in. Returns the stored product.
func (s *Store) AddProduct(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.EntryDate.IsZero() {
		p.EntryDate = today(s.now)
	}
	s.products = append(s.products, p)
	if err := s.persist(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces the catalog entry with the same id.
func (s *Store) UpdateProduct(p Product) error {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return s.persist()
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProduct, p.ID)
}

// DeleteProduct removes a product from the catalog. Historical sales and
// purchases keep referencing the id; views substitute a placeholder for it.
func (s *Store) DeleteProduct(id string) error {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = slices.Delete(s.products, i, i+1)
			return s.persist()
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProduct, id)
}

// AddCustomer adds a customer, filling in a missing id.
func (s *Store) AddCustomer(c Customer) (Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.customers = append(s.customers, c)
	if err := s.persist(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// UpdateCustomer replaces the customer with the same id.
func (s *Store) UpdateCustomer(c Customer) error {
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return s.persist()
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCustomer, c.ID)
}

// DeleteCustomer removes a customer. Sales referencing it keep the id.
func (s *Store) DeleteCustomer(id string) error {
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = slices.Delete(s.customers, i, i+1)
			return s.persist()
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCustomer, id)
}
