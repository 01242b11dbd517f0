package hasilbumi

import (
	"maps"
	"slices"

	"github.com/neromancy/hasilbumi/date"
)

// This file holds the accounting engine: pure functions recomputed from the
// transaction log on every query. None of them depends on the log order,
// except Recent which is explicitly about insertion order.

// AllItems is the item filter value that accepts every item.
const AllItems = "ALL"

// ComputeStock returns the net quantity held per item: purchases minus sales.
//
// Only items that appear in txs are present. Sales in excess of purchases
// give a negative stock, which is kept as is.
func ComputeStock(txs []Transaction) map[string]Quantity {
	stock := make(map[string]Quantity)
	for _, tx := range txs {
		q := stock[tx.Item]
		if tx.IsBuy() {
			stock[tx.Item] = q.Add(tx.Qty)
		} else {
			stock[tx.Item] = q.Sub(tx.Qty)
		}
	}
	return stock
}

// ItemStock is the stock of one item.
type ItemStock struct {
	Item string
	Qty  Quantity
}

// SortedStock returns the stock sorted by item name.
func SortedStock(stock map[string]Quantity) []ItemStock {
	items := make([]ItemStock, 0, len(stock))
	for _, item := range slices.Sorted(maps.Keys(stock)) {
		items = append(items, ItemStock{Item: item, Qty: stock[item]})
	}
	return items
}

// Cashflow is the money in and out over a set of transactions.
type Cashflow struct {
	Income  Money // sum of sales
	Expense Money // sum of purchases
	Profit  Money // Income - Expense
}

// ComputeCashflow sums sale totals as income and purchase totals as expense.
func ComputeCashflow(txs []Transaction) Cashflow {
	var c Cashflow
	for _, tx := range txs {
		if tx.IsBuy() {
			c.Expense = c.Expense.Add(tx.Total)
		} else {
			c.Income = c.Income.Add(tx.Total)
		}
	}
	c.Profit = c.Income.Sub(c.Expense)
	return c
}

// MatchesPeriod reports whether tx happened within the period p containing anchor.
//
// Daily means the same calendar day, Monthly the same year and month, Yearly the same year.
// Weekly (ISO week) and Quarterly are also supported.
func MatchesPeriod(tx Transaction, p date.Period, anchor date.Date) bool {
	return p.Range(anchor).Contains(tx.Date)
}

// MatchesItem reports whether tx is about item. AllItems matches everything.
func MatchesItem(tx Transaction, item string) bool {
	return item == AllItems || tx.Item == item
}

// Summary aggregates amounts and quantities per direction.
type Summary struct {
	TotalBuy  Money
	TotalSell Money
	QtyBuy    Quantity
	QtySell   Quantity
	Profit    Money // TotalSell - TotalBuy
	Count     int
}

// Summarize reduces txs into a Summary.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.IsBuy() {
			s.TotalBuy = s.TotalBuy.Add(tx.Total)
			s.QtyBuy = s.QtyBuy.Add(tx.Qty)
		} else {
			s.TotalSell = s.TotalSell.Add(tx.Total)
			s.QtySell = s.QtySell.Add(tx.Qty)
		}
	}
	s.Profit = s.TotalSell.Sub(s.TotalBuy)
	s.Count = len(txs)
	return s
}

// Recent returns the last n transactions of txs, most recently inserted first.
//
// The order is the insertion order, the transaction dates are ignored.
func Recent(txs []Transaction, n int) []Transaction {
	if n <= 0 {
		return []Transaction{}
	}
	n = min(n, len(txs))
	recent := slices.Clone(txs[len(txs)-n:])
	slices.Reverse(recent)
	return recent
}

// UniqueItems returns the sorted set of item names that can be used to
// filter: AllItems, every catalog item and every item ever traded, even if
// it has since been removed from the catalog.
func UniqueItems(txs []Transaction, catalog []string) []string {
	set := map[string]struct{}{AllItems: {}}
	for _, name := range catalog {
		set[name] = struct{}{}
	}
	for _, tx := range txs {
		set[tx.Item] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}
