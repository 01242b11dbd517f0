package hasilbumi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/neromancy/hasilbumi/date"
)

// TxType is the direction of a transaction.
type TxType string

const (
	// Buy is a purchase: it adds to the stock and is an expense.
	Buy TxType = "BUY"
	// Sell is a sale: it removes from the stock and is an income.
	Sell TxType = "SELL"
)

// ParseType parses a transaction type. It is case insensitive and accepts
// the Indonesian words "beli" and "jual" found in older data.
func ParseType(s string) (TxType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "BELI":
		return Buy, nil
	case "SELL", "JUAL":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

func (t TxType) String() string { return string(t) }

// UnmarshalJSON decodes a type with ParseType.
func (t *TxType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrTotalMismatch      = errors.New("total is not qty × price")
)

// Transaction records the purchase or sale of some quantity of an item at a unit price.
//
// Total is redundant with Qty and Price. NewTransaction always computes it
// exactly. Records imported from the web app carry totals computed with
// floats, like 3.3000000000000003 for 1.1 × 3.
type Transaction struct {
	ID    string    `json:"id"`
	Date  date.Date `json:"date"`
	Type  TxType    `json:"type"`
	Item  string    `json:"item"`
	Qty   Quantity  `json:"qty"`
	Price Money     `json:"price"`
	Total Money     `json:"total"`
}

// NewTransaction creates a transaction with a fresh ID and total = qty × price.
//
// The item name is used as is: it is not normalized nor checked against the catalog.
func NewTransaction(on date.Date, typ TxType, item string, qty Quantity, price Money) (Transaction, error) {
	tx := Transaction{
		ID:    NewID(),
		Date:  on,
		Type:  typ,
		Item:  item,
		Qty:   qty,
		Price: price,
		Total: price.Mul(qty),
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// IsBuy reports whether tx is a purchase.
func (tx Transaction) IsBuy() bool { return tx.Type == Buy }

// Validate checks every field of the transaction and returns all the problems found.
// The total must match qty × price up to float rounding noise.
func (tx Transaction) Validate() error {
	var errs []error
	if tx.ID == "" {
		errs = append(errs, fmt.Errorf("%w: missing id", ErrInvalidTransaction))
	}
	if tx.Date.IsZero() {
		errs = append(errs, fmt.Errorf("%w: missing date", ErrInvalidTransaction))
	}
	if tx.Type != Buy && tx.Type != Sell {
		errs = append(errs, fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, tx.Type))
	}
	if strings.TrimSpace(tx.Item) == "" {
		errs = append(errs, fmt.Errorf("%w: missing item", ErrInvalidTransaction))
	}
	if tx.Qty.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: negative quantity %v", ErrInvalidTransaction, tx.Qty))
	}
	if tx.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: negative price %v", ErrInvalidTransaction, tx.Price))
	}
	if want := tx.Price.Mul(tx.Qty); !tx.Total.Near(want) {
		errs = append(errs, fmt.Errorf("%w: got %v want %v", ErrTotalMismatch, tx.Total, want))
	}
	return errors.Join(errs...)
}
