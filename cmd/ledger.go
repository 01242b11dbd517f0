package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/date"
)

// --- Sample Command ---

type sampleCmd struct {
	force bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "load demonstration data" }
func (*sampleCmd) Usage() string {
	return `hb sample [-f]

  Appends a batch of sample transactions dated from the last three weeks,
  and adds their items to the catalog. Existing data is kept, but the
  command refuses to run on a ledger that is not empty unless -f is given.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Load the sample even if the ledger has transactions")
}

func (c *sampleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		if n := len(sess.Transactions()); n > 0 && !c.force {
			fmt.Fprintf(os.Stderr, "Error: the ledger already has %d transactions, use -f to add the sample anyway.\n", n)
			return subcommands.ExitFailure
		}
		n, err := sess.LoadSample(ctx, date.Today())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading sample: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Loaded %d sample transactions\n", n)
		return subcommands.ExitSuccess
	})
}

// --- Clear Command ---

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all transactions" }
func (*clearCmd) Usage() string {
	return `hb clear -y

  Deletes every transaction of the ledger. The item catalog is kept.
  There is no undo: -y is required to confirm.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Confirm the deletion")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: clear deletes all transactions, add -y to confirm.")
		return subcommands.ExitUsageError
	}
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		n := len(sess.Transactions())
		if err := sess.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted %d transactions\n", n)
		return subcommands.ExitSuccess
	})
}

// --- Import Command ---

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import data exported from the web application" }
func (*importCmd) Usage() string {
	return `hb import <file>

  Imports the transactions and items of a browser storage export of the
  former web application: a JSON object with the "hasilBumiData" and
  "hasilBumiItems" keys. Transactions already in the ledger are skipped.
  Totals are imported as they are, run 'hb check' afterwards.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	ledger, catalog, err := hasilbumi.DecodeLegacy(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		txs, items, err := sess.Import(ctx, ledger, catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d transactions and %d items\n", txs, items)
		return subcommands.ExitSuccess
	})
}

// --- Check Command ---

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate every transaction of the ledger" }
func (*checkCmd) Usage() string {
	return `hb check

  Validates every transaction: required fields, non negative quantity and
  price, and total equal to quantity × price. Reports all the problems found.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		if err := sess.Check(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%d transactions OK\n", len(sess.Transactions()))
		return subcommands.ExitSuccess
	})
}
