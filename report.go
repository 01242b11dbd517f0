package hasilbumi

import "github.com/neromancy/hasilbumi/date"

// DashboardRecent is the number of recent transactions shown on the dashboard.
const DashboardRecent = 5

// Filter selects transactions by period and item.
type Filter struct {
	Period date.Period
	Anchor date.Date // any day within the period
	Item   string    // an item name or AllItems
}

// NewFilter returns a filter on the period p containing today, for all items.
func NewFilter(p date.Period) Filter {
	return Filter{Period: p, Anchor: date.Today(), Item: AllItems}
}

// Range returns the date range the filter accepts.
func (f Filter) Range() date.Range { return f.Period.Range(f.Anchor) }

// Match reports whether tx passes both the item and the period filter.
func (f Filter) Match(tx Transaction) bool {
	return MatchesItem(tx, f.Item) && MatchesPeriod(tx, f.Period, f.Anchor)
}

// Report is the filtered view of the ledger: the matching transactions in
// insertion order, and their summary.
type Report struct {
	Filter       Filter
	Range        date.Range
	Transactions []Transaction
	Summary      Summary
	Items        []string // every value Filter.Item can take
}

// NewReport applies f to txs. catalog is only used to list the available item filters.
func NewReport(txs []Transaction, catalog []string, f Filter) *Report {
	var selected []Transaction
	for _, tx := range txs {
		if f.Match(tx) {
			selected = append(selected, tx)
		}
	}
	return &Report{
		Filter:       f,
		Range:        f.Range(),
		Transactions: selected,
		Summary:      Summarize(selected),
		Items:        UniqueItems(txs, catalog),
	}
}

// Dashboard is the overview of the whole ledger.
type Dashboard struct {
	Stock    []ItemStock
	Cashflow Cashflow
	Count    int
	Recent   []Transaction
}

// NewDashboard computes the overview of txs.
func NewDashboard(txs []Transaction) *Dashboard {
	return &Dashboard{
		Stock:    SortedStock(ComputeStock(txs)),
		Cashflow: ComputeCashflow(txs),
		Count:    len(txs),
		Recent:   Recent(txs, DashboardRecent),
	}
}
