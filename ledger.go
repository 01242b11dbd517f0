package hasilbumi

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are kept in insertion order, which is not the date
// order: a transaction can be recorded long after the day it happened.
type Ledger struct {
	transactions []Transaction
	ids          map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		ids:          make(map[string]struct{}),
	}
}

// Append validates tx and adds it at the end of the ledger.
func (l *Ledger) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if _, exists := l.ids[tx.ID]; exists {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidTransaction, tx.ID)
	}
	l.append(tx)
	return nil
}

// append adds tx without validation, it is used to load existing data as is.
func (l *Ledger) append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.ids[tx.ID] = struct{}{}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All iterates over transactions in insertion order.
func (l *Ledger) All() iter.Seq2[int, Transaction] { return slices.All(l.transactions) }

// Clear removes all transactions.
func (l *Ledger) Clear() {
	l.transactions = make([]Transaction, 0)
	clear(l.ids)
}

func (l *Ledger) clone() *Ledger {
	return &Ledger{transactions: slices.Clone(l.transactions), ids: maps.Clone(l.ids)}
}
