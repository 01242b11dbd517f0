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

// recordCmd holds the flags shared by buy and sell.
type recordCmd struct {
	date     string
	item     string
	quantity string
	price    string
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Transaction date (YYYY-MM-DD, or relative like -1d)")
	f.StringVar(&c.item, "i", "", "Item name, as listed by 'hb items'")
	f.StringVar(&c.quantity, "q", "", "Quantity in kilograms")
	f.StringVar(&c.price, "p", "", "Price per kilogram")
}

func (c *recordCmd) record(ctx context.Context, f *flag.FlagSet, typ hasilbumi.TxType) subcommands.ExitStatus {
	if c.item == "" || c.quantity == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -i, -q and -p are required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := hasilbumi.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	price, err := hasilbumi.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	return withSession(ctx, func(sess *hasilbumi.Session) subcommands.ExitStatus {
		tx, err := sess.Record(ctx, day, typ, c.item, qty, price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded %s of %s kg %s at %s (total %s) on %s\n",
			tx.Type, tx.Qty, tx.Item, tx.Price.Format(*currency), tx.Total.Format(*currency), tx.Date)
		return subcommands.ExitSuccess
	})
}

// --- Buy Command ---

type buyCmd struct{ recordCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase" }
func (*buyCmd) Usage() string {
	return `hb buy [-d <date>] -i <item> -q <quantity> -p <price>

  Records the purchase of a quantity of an item. The stock of the item
  increases, and the total (quantity × price) is an expense.
`
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ctx, f, hasilbumi.Buy)
}

// --- Sell Command ---

type sellCmd struct{ recordCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `hb sell [-d <date>] -i <item> -q <quantity> -p <price>

  Records the sale of a quantity of an item. The stock of the item
  decreases, and the total (quantity × price) is an income.
  Selling more than the stock is allowed: the stock becomes negative.
`
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ctx, f, hasilbumi.Sell)
}
