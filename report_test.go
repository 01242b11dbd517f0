package hasilbumi

import (
	"slices"
	"testing"

	"github.com/neromancy/hasilbumi/date"
)

func TestNewReport(t *testing.T) {
	txs := []Transaction{
		tx(t, "2024-03-20", Buy, "LADA", 10, 1000),
		tx(t, "2024-02-28", Buy, "LADA", 5, 1000),
		tx(t, "2024-03-01", Sell, "KOPI", 2, 500),
		tx(t, "2024-03-02", Sell, "LADA", 4, 1500),
	}

	testCases := []struct {
		name      string
		filter    Filter
		wantItems []string // items of the selected transactions, in order
		wantProft Money
	}{
		{
			name:      "march all items",
			filter:    Filter{Period: date.Monthly, Anchor: date.MustParse("2024-03-15"), Item: AllItems},
			wantItems: []string{"LADA", "KOPI", "LADA"},
			wantProft: M(-3000),
		},
		{
			name:      "march lada",
			filter:    Filter{Period: date.Monthly, Anchor: date.MustParse("2024-03-15"), Item: "LADA"},
			wantItems: []string{"LADA", "LADA"},
			wantProft: M(-4000),
		},
		{
			name:      "a day without transactions",
			filter:    Filter{Period: date.Daily, Anchor: date.MustParse("2024-03-03"), Item: AllItems},
			wantItems: nil,
			wantProft: M(0),
		},
		{
			name:      "year",
			filter:    Filter{Period: date.Yearly, Anchor: date.MustParse("2024-12-31"), Item: "LADA"},
			wantItems: []string{"LADA", "LADA", "LADA"},
			wantProft: M(-9000),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReport(txs, []string{"CENGKEH"}, tc.filter)
			var items []string
			for _, v := range r.Transactions {
				items = append(items, v.Item)
			}
			if !slices.Equal(items, tc.wantItems) {
				t.Errorf("NewReport() items = %v, want %v", items, tc.wantItems)
			}
			if !r.Summary.Profit.Equal(tc.wantProft) {
				t.Errorf("NewReport() profit = %v, want %v", r.Summary.Profit, tc.wantProft)
			}
			if want := []string{"ALL", "CENGKEH", "KOPI", "LADA"}; !slices.Equal(r.Items, want) {
				t.Errorf("NewReport() items filter = %v, want %v", r.Items, want)
			}
		})
	}
}

func TestNewDashboard(t *testing.T) {
	var txs []Transaction
	for i := range 7 {
		txs = append(txs, tx(t, "2024-03-01", Buy, "LADA", int64(i+1), 100))
	}
	txs = append(txs, tx(t, "2024-01-01", Sell, "KOPI", 3, 1000))

	d := NewDashboard(txs)
	if d.Count != 8 {
		t.Errorf("Count = %d, want 8", d.Count)
	}
	if len(d.Recent) != DashboardRecent || d.Recent[0].Item != "KOPI" {
		t.Errorf("Recent = %v, want the KOPI sale first", d.Recent)
	}
	if len(d.Stock) != 2 || d.Stock[0].Item != "KOPI" || !d.Stock[0].Qty.Equal(Q(-3)) || !d.Stock[1].Qty.Equal(Q(28)) {
		t.Errorf("Stock = %v, want [KOPI -3, LADA 28]", d.Stock)
	}
	if !d.Cashflow.Income.Equal(M(3000)) || !d.Cashflow.Expense.Equal(M(2800)) || !d.Cashflow.Profit.Equal(M(200)) {
		t.Errorf("Cashflow = %+v", d.Cashflow)
	}
}
