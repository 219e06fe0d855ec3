package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ljstore/store/date"
	"github.com/ljstore/store/renderer"
)

type dashboardCmd struct {
	day string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the store overview" }
func (*dashboardCmd) Usage() string {
	return `lj dashboard [-d <date>]

  Displays the inventory value, today's revenue and profit, the last 7 days
  of sales and the stock alerts.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "Day to report on, YYYY-MM-DD.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := date.Parse(c.day)
	if err != nil {
		return fail("invalid date %q: %v", c.day, err)
	}

	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}

	doc := renderer.DashboardMarkdown(day, s.Dashboard(day), s.WeeklySeries(day), s.LowStockRanking())
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
