package hasilbumi

import (
	"fmt"

	"github.com/neromancy/hasilbumi/date"
)

// SampleItems are the item names used by SampleTransactions.
var SampleItems = []string{"CENGKEH KERING", "CENGKEH BASAH", "KAPULAGA LOKAL", "LADA HITAM", "LADA PUTIH"}

var sampleData = []struct {
	daysAgo int
	typ     TxType
	item    string
	qty     int64
	price   int64
}{
	{10, Buy, "CENGKEH KERING", 100, 115000},
	{8, Buy, "CENGKEH KERING", 50, 112000},
	{2, Sell, "CENGKEH KERING", 80, 135000},
	{15, Buy, "KAPULAGA LOKAL", 200, 65000},
	{12, Sell, "KAPULAGA LOKAL", 150, 78000},
	{5, Buy, "KAPULAGA LOKAL", 100, 68000},
	{20, Buy, "LADA HITAM", 500, 55000},
	{18, Buy, "LADA PUTIH", 100, 90000},
	{3, Sell, "LADA HITAM", 200, 62000},
	{0, Buy, "CENGKEH BASAH", 300, 35000},
}

// SampleTransactions returns a fixed batch of demonstration transactions,
// dated relative to today.
func SampleTransactions(today date.Date) []Transaction {
	txs := make([]Transaction, 0, len(sampleData))
	for _, s := range sampleData {
		tx, err := NewTransaction(today.Add(-s.daysAgo), s.typ, s.item, Q(s.qty), M(s.price))
		if err != nil {
			panic(fmt.Sprintf("invalid sample transaction: %v", err))
		}
		txs = append(txs, tx)
	}
	return txs
}
