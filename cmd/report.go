package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ljstore/store/renderer"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the all-time report" }
func (*reportCmd) Usage() string {
	return `lj report

  Displays total revenue, profit, investment, the profit margin and the
  top-selling products over the whole history.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}
	printMarkdown(renderer.ReportMarkdown(s.Summarize(), s.TopSellers()))
	return subcommands.ExitSuccess
}
