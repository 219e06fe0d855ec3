package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ljstore/store/renderer"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales log" }
func (*salesCmd) Usage() string {
	return `lj sales

  Lists the sales log, newest first, with product and customer names resolved.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	printMarkdown(renderer.SalesMarkdown(s.SalesLog()))
	return subcommands.ExitSuccess
}
