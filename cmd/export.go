package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the sales log as CSV" }
func (*exportCmd) Usage() string {
	return `lj export [-o <file>]

  Writes the sales log as CSV, newest first. Without -o the CSV goes to
  stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "File to write to. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore()
	if err != nil {
		return fail("could not open the store: %v", err)
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			return fail("could not create %q: %v", c.outputFile, err)
		}
		defer out.Close()
	}

	if err := s.ExportSalesCSV(out); err != nil {
		return fail("could not export: %v", err)
	}
	if c.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Exported %d sales to %s\n", len(s.Sales()), c.outputFile)
	}
	return subcommands.ExitSuccess
}
