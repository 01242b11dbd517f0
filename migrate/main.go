// Command migrate moves a ledger between stores, and converts exports of the
// former web application.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"maps"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/config"
	"github.com/neromancy/hasilbumi/store"
)

func main() {
	// The migrate tool needs its own set of flags, independent of the main hb tool.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(&storeCmd{}, "")
	commander.Register(&legacyCmd{}, "")
	commander.Register(&checkCmd{}, "")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(zerolog.InfoLevel).With().Timestamp().Logger()
	os.Exit(int(commander.Execute(context.Background())))
}

// keys holds every key a ledger is made of.
var keys = []string{hasilbumi.TransactionsKey, hasilbumi.ItemsKey}

// --- storeCmd ---

type storeCmd struct {
	from string
	to   string
}

func (*storeCmd) Name() string     { return "store" }
func (*storeCmd) Synopsis() string { return "copies a ledger from one store to another" }
func (*storeCmd) Usage() string {
	return `migrate store -from <kind:path> -to <kind:path>

Copies the transactions and the items from a store to another, for instance
from the default file store to a SQLite database:

  migrate store -from file:.hasilbumi -to sqlite:hasilbumi.db

Redis stores are written "redis:", and configured by the HB_REDIS_ variables.
The destination is overwritten.
`
}
func (c *storeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "The source store, as kind:path.")
	f.StringVar(&c.to, "to", "", "The destination store, as kind:path.")
}

func (c *storeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to flags are required.")
		return subcommands.ExitUsageError
	}
	if c.from == c.to {
		fmt.Fprintln(os.Stderr, "Error: -from and -to must be different stores.")
		return subcommands.ExitUsageError
	}

	src, err := openStore(ctx, c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening source store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer src.Close()
	// Refuse to copy garbage.
	if _, err := hasilbumi.Open(ctx, src); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading source ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	dst, err := openStore(ctx, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening destination store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer dst.Close()

	n, err := store.Copy(ctx, dst, src, keys...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error copying ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully copied %d keys to %s\n", n, c.to)
	return subcommands.ExitSuccess
}

// --- legacyCmd ---

type legacyCmd struct {
	in  string
	out string
}

func (*legacyCmd) Name() string { return "legacy" }
func (*legacyCmd) Synopsis() string {
	return "converts an export of the web application to a ledger folder"
}
func (*legacyCmd) Usage() string {
	return `migrate legacy -in <export.json> -out <folder>

Writes the transactions and the items of an export into a new folder, that
can be used with "hb -path <folder>". The folder must not hold a ledger yet.
Transactions are converted as they are, use "hb check" to find the invalid ones.
`
}
func (c *legacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "The path to the exported JSON file.")
	f.StringVar(&c.out, "out", "", "The folder where the ledger will be written.")
}

func (c *legacyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" || c.out == "" {
		fmt.Fprintln(os.Stderr, "Error: -in and -out flags are required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	ledger, catalog, err := hasilbumi.DecodeLegacy(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding export: %v\n", err)
		return subcommands.ExitFailure
	}
	if catalog == nil {
		log.Info().Msg("no items in the export, using the default items")
		catalog = hasilbumi.NewCatalog(hasilbumi.DefaultItems...)
	}

	dst, err := store.NewFile(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	defer dst.Close()
	if _, err := dst.Get(ctx, hasilbumi.TransactionsKey); !errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %q already holds a ledger.\n", c.out)
		return subcommands.ExitFailure
	}

	var tx, items bytes.Buffer
	if err := errors.Join(hasilbumi.EncodeLedger(&tx, ledger), hasilbumi.EncodeCatalog(&items, catalog)); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := errors.Join(
		dst.Put(ctx, hasilbumi.ItemsKey, items.Bytes()),
		dst.Put(ctx, hasilbumi.TransactionsKey, tx.Bytes()),
	); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully converted %d transactions and %d items to %s\n", ledger.Len(), catalog.Len(), c.out)
	return subcommands.ExitSuccess
}

// --- checkCmd ---

type checkCmd struct {
	a string
	b string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verifies a migration by comparing dashboards" }
func (*checkCmd) Usage() string {
	return `migrate check -a <kind:path> -b <kind:path>

Compares the number of transactions, the stock of every item and the cash flow
of two stores, and prints the differences.
`
}
func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.a, "a", "", "The first store, as kind:path.")
	f.StringVar(&c.b, "b", "", "The second store, as kind:path.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.a == "" || c.b == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -b flags are required.")
		return subcommands.ExitUsageError
	}

	a, errA := loadDashboard(ctx, c.a)
	b, errB := loadDashboard(ctx, c.b)
	if err := errors.Join(errA, errB); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledgers: %v\n", err)
		return subcommands.ExitFailure
	}

	diffs := compareDashboards(a, b)
	if len(diffs) == 0 {
		fmt.Println("Both ledgers are identical.")
		return subcommands.ExitSuccess
	}
	fmt.Printf(" %-20s| %-20s| %-20s\n", "", c.a, c.b)
	fmt.Println("----------------------------------------------------------------")
	for _, d := range diffs {
		fmt.Printf(" %-20s| %-20s| %-20s\n", d.what, d.a, d.b)
	}
	return subcommands.ExitFailure
}

// --- Helper Functions ---

// openStore opens a store described as kind:path.
func openStore(ctx context.Context, target string) (store.Store, error) {
	_ = godotenv.Load()
	cfg := config.Load()
	kind, path, _ := strings.Cut(target, ":")
	cfg.Store = strings.ToLower(kind)
	cfg.Path = path
	log.Info().Str("kind", cfg.Store).Str("path", path).Msg("opening store")
	return store.Open(ctx, cfg.StoreOptions())
}

func loadDashboard(ctx context.Context, target string) (*hasilbumi.Dashboard, error) {
	s, err := openStore(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	defer s.Close()
	sess, err := hasilbumi.Open(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	return sess.Dashboard(), nil
}

type diff struct{ what, a, b string }

// compareDashboards lists what differs between a and b, ignoring recent activity.
func compareDashboards(a, b *hasilbumi.Dashboard) []diff {
	var diffs []diff
	if a.Count != b.Count {
		diffs = append(diffs, diff{"transactions", fmt.Sprint(a.Count), fmt.Sprint(b.Count)})
	}
	money := func(what string, x, y hasilbumi.Money) {
		if !x.Equal(y) {
			diffs = append(diffs, diff{what, x.String(), y.String()})
		}
	}
	money("income", a.Cashflow.Income, b.Cashflow.Income)
	money("expense", a.Cashflow.Expense, b.Cashflow.Expense)

	stock := func(d *hasilbumi.Dashboard) map[string]hasilbumi.Quantity {
		m := make(map[string]hasilbumi.Quantity)
		for _, s := range d.Stock {
			m[s.Item] = s.Qty
		}
		return m
	}
	sa, sb := stock(a), stock(b)
	for _, s := range hasilbumi.SortedStock(mergeKeys(sa, sb)) {
		x, y := sa[s.Item], sb[s.Item]
		if !x.Equal(y) {
			diffs = append(diffs, diff{"stock " + s.Item, x.String(), y.String()})
		}
	}
	return diffs
}

// mergeKeys returns a stock map holding every item of a and b.
func mergeKeys(a, b map[string]hasilbumi.Quantity) map[string]hasilbumi.Quantity {
	m := maps.Clone(a)
	maps.Copy(m, b)
	return m
}
