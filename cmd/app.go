// Package cmd implements the CLI application to manage the commodity ledger.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/config"
	"github.com/neromancy/hasilbumi/renderer"
	"github.com/neromancy/hasilbumi/store"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&clearCmd{}, "transactions")
	c.Register(&sampleCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&checkCmd{}, "transactions")

	c.Register(&itemsCmd{}, "items")
	c.Register(&addItemCmd{}, "items")
	c.Register(&rmItemCmd{}, "items")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cfg = loadConfig()

// loadConfig reads the optional .env file of the working directory, then the environment.
func loadConfig() *config.Config {
	_ = godotenv.Load()
	return config.Load()
}

var (
	storeKind = flag.String("store", cfg.Store, "Store kind (file, sqlite, redis)")
	storePath = flag.String("path", cfg.Path, "Data directory for the file store, database file for sqlite")
	currency  = flag.String("currency", cfg.Currency, "Currency amounts are displayed in")
	Verbose   = flag.Bool("v", cfg.Verbose, "Print debug logs")
)

// SetupLogging configures the global logger, it must be called after flags are parsed.
func SetupLogging() {
	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()
}

// openStore opens the store selected by the global flags.
func openStore(ctx context.Context) (store.Store, error) {
	c := *cfg
	c.Store = strings.ToLower(*storeKind)
	c.Path = *storePath
	opts := c.StoreOptions()
	log.Debug().Str("kind", opts.Kind).Str("path", opts.Path).Msg("opening store")
	return store.Open(ctx, opts)
}

// withSession opens the session on the configured store and runs f on it.
func withSession(ctx context.Context, f func(*hasilbumi.Session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	sess, err := hasilbumi.Open(ctx, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return f(sess)
}

func renderOptions() renderer.Options {
	return renderer.Options{Currency: strings.ToUpper(*currency)}
}

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("could not style markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
