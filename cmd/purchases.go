package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ljstore/store/renderer"
)

type purchasesCmd struct{}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "list the purchase log" }
func (*purchasesCmd) Usage() string {
	return `lj purchases

  Lists the purchase log, newest first.
`
}

func (c *purchasesCmd) SetFlags(f *flag.FlagSet) {}

func (c *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	printMarkdown(renderer.PurchasesMarkdown(s.PurchasesLog()))
	return subcommands.ExitSuccess
}
