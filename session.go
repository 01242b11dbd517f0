package hasilbumi

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/neromancy/hasilbumi/date"
	"github.com/neromancy/hasilbumi/store"
)

// Keys of the two values a Session persists.
const (
	TransactionsKey = "transactions.jsonl"
	ItemsKey        = "items.json"
)

// Session holds the ledger and the item catalog loaded from a store.
//
// Every mutation writes the full changed value back to the store before
// returning. A Session is not safe for concurrent use.
type Session struct {
	store   store.Store
	ledger  *Ledger
	catalog *Catalog
}

// Open loads the ledger and the catalog from s. Missing keys yield an empty
// ledger and the DefaultItems catalog.
func Open(ctx context.Context, s store.Store) (*Session, error) {
	sess := &Session{store: s}

	data, err := s.Get(ctx, TransactionsKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sess.ledger = NewLedger()
	case err != nil:
		return nil, fmt.Errorf("could not load transactions: %w", err)
	default:
		if sess.ledger, err = DecodeLedger(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("could not load transactions: %w", err)
		}
	}

	data, err = s.Get(ctx, ItemsKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		sess.catalog = NewCatalog(DefaultItems...)
	case err != nil:
		return nil, fmt.Errorf("could not load items: %w", err)
	default:
		if sess.catalog, err = DecodeCatalog(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("could not load items: %w", err)
		}
	}

	for _, tx := range sess.ledger.transactions {
		if err := tx.Validate(); err != nil {
			log.Warn().Str("id", tx.ID).Err(err).Msg("invalid transaction in ledger")
		}
	}
	log.Debug().Int("transactions", sess.ledger.Len()).Int("items", sess.catalog.Len()).Msg("session opened")
	return sess, nil
}

// Transactions returns all transactions in insertion order.
func (s *Session) Transactions() []Transaction { return s.ledger.Transactions() }

// Items returns the catalog item names.
func (s *Session) Items() []string { return s.catalog.Names() }

// HasItem reports whether name is in the catalog, ignoring case.
func (s *Session) HasItem(name string) bool { return s.catalog.Contains(name) }

// Record creates a transaction on an item of the catalog and appends it to the ledger.
func (s *Session) Record(ctx context.Context, on date.Date, typ TxType, item string, qty Quantity, price Money) (Transaction, error) {
	item = NormalizeItem(item)
	if !s.catalog.Contains(item) {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	tx, err := NewTransaction(on, typ, item, qty, price)
	if err != nil {
		return Transaction{}, err
	}
	if err := s.AddTransaction(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// AddTransaction appends tx to the ledger and saves it.
func (s *Session) AddTransaction(ctx context.Context, tx Transaction) error {
	return s.update(ctx, []string{TransactionsKey}, func() error {
		return s.ledger.Append(tx)
	})
}

// AddItem adds a new item to the catalog, saves it and returns the canonical name.
func (s *Session) AddItem(ctx context.Context, name string) (n string, err error) {
	err = s.update(ctx, []string{ItemsKey}, func() (err error) {
		n, err = s.catalog.Add(name)
		return err
	})
	if err != nil {
		return "", err
	}
	return n, nil
}

// DeleteItem removes an item from the catalog and saves it. Transactions on that item are kept.
func (s *Session) DeleteItem(ctx context.Context, name string) error {
	return s.update(ctx, []string{ItemsKey}, func() error {
		return s.catalog.Delete(name)
	})
}

// Clear removes every transaction. The catalog is kept.
func (s *Session) Clear(ctx context.Context) error {
	return s.update(ctx, []string{TransactionsKey}, func() error {
		s.ledger.Clear()
		return nil
	})
}

// LoadSample appends SampleTransactions dated from today, and adds their
// items to the catalog. It returns the number of transactions added.
func (s *Session) LoadSample(ctx context.Context, today date.Date) (int, error) {
	txs := SampleTransactions(today)
	err := s.update(ctx, []string{TransactionsKey, ItemsKey}, func() error {
		s.catalog.Merge(SampleItems...)
		for _, tx := range txs {
			if err := s.ledger.Append(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(txs), nil
}

// Import appends the transactions of ledger whose ID is not already known,
// as they are, and merges catalog (if any) into the catalog.
// It returns the number of transactions and items added.
func (s *Session) Import(ctx context.Context, ledger *Ledger, catalog *Catalog) (txs, items int, err error) {
	err = s.update(ctx, []string{TransactionsKey, ItemsKey}, func() error {
		for _, tx := range ledger.transactions {
			if _, exists := s.ledger.ids[tx.ID]; exists {
				log.Debug().Str("id", tx.ID).Msg("skipping known transaction")
				continue
			}
			s.ledger.append(tx)
			txs++
		}
		if catalog != nil {
			items = s.catalog.Merge(catalog.Names()...)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return txs, items, nil
}

// update applies change to the ledger and the catalog, then saves keys in order.
// If anything fails, the session goes back to its previous state and the keys
// already saved are written again from it.
func (s *Session) update(ctx context.Context, keys []string, change func() error) error {
	ledger, catalog := s.ledger.clone(), s.catalog.clone()
	rollback := func(saved []string) {
		s.ledger, s.catalog = ledger, catalog
		for _, key := range saved {
			if err := s.save(ctx, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("could not restore store")
			}
		}
	}
	if err := change(); err != nil {
		rollback(nil)
		return err
	}
	for i, key := range keys {
		if err := s.save(ctx, key); err != nil {
			rollback(keys[:i])
			return err
		}
	}
	return nil
}

func (s *Session) save(ctx context.Context, key string) error {
	switch key {
	case TransactionsKey:
		return s.saveLedger(ctx)
	case ItemsKey:
		return s.saveCatalog(ctx)
	}
	return fmt.Errorf("unknown key %q", key)
}

// Check validates every transaction of the ledger and returns all the problems found.
func (s *Session) Check() error {
	var errs []error
	for i, tx := range s.ledger.All() {
		if err := tx.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("transaction #%d (%s): %w", i+1, tx.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Dashboard computes the overview of the whole ledger.
func (s *Session) Dashboard() *Dashboard { return NewDashboard(s.ledger.transactions) }

// Report applies f to the ledger.
func (s *Session) Report(f Filter) *Report {
	return NewReport(s.ledger.transactions, s.catalog.names, f)
}

func (s *Session) saveLedger(ctx context.Context) error {
	var b bytes.Buffer
	if err := EncodeLedger(&b, s.ledger); err != nil {
		return err
	}
	if err := s.store.Put(ctx, TransactionsKey, b.Bytes()); err != nil {
		return fmt.Errorf("could not save transactions: %w", err)
	}
	log.Debug().Int("transactions", s.ledger.Len()).Msg("ledger saved")
	return nil
}

func (s *Session) saveCatalog(ctx context.Context) error {
	var b bytes.Buffer
	if err := EncodeCatalog(&b, s.catalog); err != nil {
		return err
	}
	if err := s.store.Put(ctx, ItemsKey, b.Bytes()); err != nil {
		return fmt.Errorf("could not save items: %w", err)
	}
	log.Debug().Int("items", s.catalog.Len()).Msg("items saved")
	return nil
}
