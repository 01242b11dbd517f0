package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/date"
	"github.com/neromancy/hasilbumi/renderer"
)

type reportCmd struct {
	period    string
	date      string
	item      string
	html      string
	listItems bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display transactions and totals for a period" }
func (*reportCmd) Usage() string {
	return `hb report [-p <period>] [-d <date>] [-i <item>] [-html <file>]

  Displays the transactions of the period containing the date, optionally
  for a single item, with the total purchases, sales and profit.

  Periods are daily, weekly, monthly, quarterly and yearly.
  Use -items to list the values -i accepts: ALL, catalog items, and items
  found in transactions.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "daily", "Period (daily, weekly, monthly, quarterly, yearly)")
	f.StringVar(&c.date, "d", "0d", "Any date within the period")
	f.StringVar(&c.item, "i", hasilbumi.AllItems, "Item to report on, ALL for every item")
	f.StringVar(&c.html, "html", "", "Also write the report as an HTML page to this file")
	f.BoolVar(&c.listItems, "items", false, "List the items that can be reported on, and exit")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	anchor, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	item := hasilbumi.NormalizeItem(c.item)
	if item == "" {
		item = hasilbumi.AllItems
	}

	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		report := sess.Report(hasilbumi.Filter{Period: period, Anchor: anchor, Item: item})
		if c.listItems {
			for _, i := range report.Items {
				fmt.Println(i)
			}
			return subcommands.ExitSuccess
		}

		md := renderer.Report(report, renderOptions())
		printMarkdown(md)

		if c.html != "" {
			if err := writeHTML(c.html, "Report "+report.Range.Identifier(), md); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
				return subcommands.ExitFailure
			}
			fmt.Fprintf(os.Stderr, "Report written to %s\n", c.html)
		}
		return subcommands.ExitSuccess
	})
}

func writeHTML(filename, title, md string) error {
	var b strings.Builder
	if err := renderer.HTML(&b, title, md); err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(b.String()), 0o644)
}
