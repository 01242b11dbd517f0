package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display stock, cash flow and recent activity" }
func (*dashboardCmd) Usage() string {
	return `hb dashboard

  Displays the stock of every item, the overall income, expense and profit,
  and the last transactions recorded.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		printMarkdown(renderer.Dashboard(sess.Dashboard(), renderOptions()))
		return subcommands.ExitSuccess
	})
}
