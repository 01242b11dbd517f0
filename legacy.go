package hasilbumi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"

	"github.com/neromancy/hasilbumi/date"
)

// JSONPath of the arrays in a browser storage export.
const (
	LegacyTransactionsPath = "$.hasilBumiData"
	LegacyItemsPath        = "$.hasilBumiItems"
)

var errNotInExport = errors.New("not found in export")

// legacyTx is a transaction as stored by the browser app: ids were numbers or
// strings, types were BELI/JUAL.
type legacyTx struct {
	ID    any       `json:"id"`
	Date  date.Date `json:"date"`
	Type  TxType    `json:"type"`
	Item  string    `json:"item"`
	Qty   Quantity  `json:"qty"`
	Price Money     `json:"price"`
	Total Money     `json:"total"`
}

func (l legacyTx) transaction() Transaction {
	var id string
	switch v := l.ID.(type) {
	case string:
		id = v
	case float64:
		id = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if id == "" {
		id = NewID()
	}
	return Transaction{ID: id, Date: l.Date, Type: l.Type, Item: l.Item, Qty: l.Qty, Price: l.Price, Total: l.Total}
}

// DecodeLegacy reads an export of the browser storage of the former web
// application: a JSON object whose "hasilBumiData" key holds the transactions
// and "hasilBumiItems" the item names. Values can be the arrays themselves or
// the JSON strings the browser stored.
//
// The returned catalog is nil when the export has no items.
func DecodeLegacy(r io.Reader) (*Ledger, *Catalog, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("could not decode export: %w", err)
	}

	var txs []legacyTx
	if err := legacyArray(doc, LegacyTransactionsPath, &txs); err != nil {
		return nil, nil, err
	}
	ledger := NewLedger()
	for _, tx := range txs {
		ledger.append(tx.transaction())
	}

	var items []string
	err := legacyArray(doc, LegacyItemsPath, &items)
	switch {
	case errors.Is(err, errNotInExport):
		// items were introduced late in the web app, older exports lack them.
		return ledger, nil, nil
	case err != nil:
		return nil, nil, err
	}
	return ledger, NewCatalog(items...), nil
}

// legacyArray extracts the value at path in doc and decodes it into v.
func legacyArray(doc any, path string, v any) error {
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("%s %w: %w", path, errNotInExport, err)
	}
	var raw []byte
	switch value := value.(type) {
	case string:
		raw = []byte(value)
	default:
		if raw, err = json.Marshal(value); err != nil {
			return fmt.Errorf("invalid %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid %s: %w", path, err)
	}
	return nil
}
