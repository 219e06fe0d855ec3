package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ljstore/store"
	"github.com/ljstore/store/renderer"
)

type customersCmd struct{}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "list the customers" }
func (*customersCmd) Usage() string {
	return `lj customers

  Lists the registered customers.
`
}

func (c *customersCmd) SetFlags(f *flag.FlagSet) {}

func (c *customersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	printMarkdown(renderer.CustomersMarkdown(s.Customers()))
	return subcommands.ExitSuccess
}

type customerAddCmd struct {
	name  string
	email string
	phone string
}

func (*customerAddCmd) Name() string     { return "customer-add" }
func (*customerAddCmd) Synopsis() string { return "register a customer" }
func (*customerAddCmd) Usage() string {
	return `lj customer-add -name <name> [-email <email>] [-phone <phone>]

  Registers a customer, so sales can reference them.
`
}

func (c *customerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name.")
	f.StringVar(&c.email, "email", "", "Customer email.")
	f.StringVar(&c.phone, "phone", "", "Customer phone.")
}

func (c *customerAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := store.RequireText("name", c.name)
	if err != nil {
		return fail("%v", err)
	}
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	customer, err := s.AddCustomer(store.Customer{Name: name, Email: c.email, Phone: c.phone})
	if err != nil {
		return fail("could not add the customer: %v", err)
	}
	fmt.Printf("Added customer %q with id %s\n", customer.Name, customer.ID)
	return subcommands.ExitSuccess
}

type customerDelCmd struct {
	id string
}

func (*customerDelCmd) Name() string     { return "customer-del" }
func (*customerDelCmd) Synopsis() string { return "delete a customer" }
func (*customerDelCmd) Usage() string {
	return `lj customer-del -id <id>

  Deletes a customer. Sales that referenced them stay in the history.
`
}

func (c *customerDelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Customer id.")
}

func (c *customerDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	customer := s.FindCustomer(c.id)
	if customer == nil {
		return fail("no customer %q", c.id)
	}
	if err := s.DeleteCustomer(customer.ID); err != nil {
		return fail("could not delete the customer: %v", err)
	}
	fmt.Printf("Deleted customer %q\n", customer.Name)
	return subcommands.ExitSuccess
}
