package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/renderer"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list the item catalog with the current stock" }
func (*itemsCmd) Usage() string {
	return `hb items

  Lists the items of the catalog, with their current stock.
`
}

func (*itemsCmd) SetFlags(f *flag.FlagSet) {}

func (*itemsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		printMarkdown(renderer.Items(sess.Items(), hasilbumi.ComputeStock(sess.Transactions())))
		return subcommands.ExitSuccess
	})
}

type addItemCmd struct{}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add items to the catalog" }
func (*addItemCmd) Usage() string {
	return `hb add-item <name>...

  Adds items to the catalog. Names are stored in upper case and must be
  unique regardless of case. Quote names containing spaces.
`
}

func (*addItemCmd) SetFlags(f *flag.FlagSet) {}

func (*addItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		status := subcommands.ExitSuccess
		for _, name := range f.Args() {
			added, err := sess.AddItem(ctx, name)
			if errors.Is(err, hasilbumi.ErrDuplicateItem) {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				continue
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error adding item %q: %v\n", name, err)
				status = subcommands.ExitFailure
				continue
			}
			fmt.Printf("Added %s\n", added)
		}
		return status
	})
}

type rmItemCmd struct{}

func (*rmItemCmd) Name() string     { return "rm-item" }
func (*rmItemCmd) Synopsis() string { return "remove items from the catalog" }
func (*rmItemCmd) Usage() string {
	return `hb rm-item <name>...

  Removes items from the catalog. Existing transactions on these items are
  kept, and still show up in reports.
`
}

func (*rmItemCmd) SetFlags(f *flag.FlagSet) {}

func (*rmItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		status := subcommands.ExitSuccess
		for _, name := range f.Args() {
			if err := sess.DeleteItem(ctx, name); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing item: %v\n", err)
				status = subcommands.ExitFailure
				continue
			}
			fmt.Printf("Removed %s\n", hasilbumi.NormalizeItem(name))
		}
		return status
	})
}
