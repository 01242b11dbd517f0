package renderer

import (
	"strings"
	"testing"

	"github.com/neromancy/hasilbumi"
	"github.com/neromancy/hasilbumi/date"
)

func newTx(t *testing.T, on string, typ hasilbumi.TxType, item string, qty, price int64) hasilbumi.Transaction {
	t.Helper()
	tx, err := hasilbumi.NewTransaction(date.MustParse(on), typ, item, hasilbumi.Q(qty), hasilbumi.M(price))
	if err != nil {
		t.Fatal(err)
	}
	return tx
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}

func TestDashboard(t *testing.T) {
	txs := []hasilbumi.Transaction{
		newTx(t, "2024-03-01", hasilbumi.Buy, "LADA", 100, 10),
		newTx(t, "2024-03-02", hasilbumi.Sell, "LADA", 30, 20),
		newTx(t, "2024-03-02", hasilbumi.Sell, "KOPI", 2, 5),
	}
	got := Dashboard(hasilbumi.NewDashboard(txs), Options{Currency: "USD"})

	assertContains(t, got,
		"# Dashboard",
		"| LADA | 70 |",
		"| KOPI | -2 ⚠ |",
		"| Income (sales) | $610.00 |",
		"| Expense (purchases) | $1,000.00 |",
		"| **Deficit** | **$390.00** |",
		"**3** transactions recorded.",
		"| 2024-03-02 | SELL | KOPI | 2 | $5.00 | $10.00 |",
	)
	if strings.Contains(got, "error") {
		t.Errorf("template error:\n%s", got)
	}
	// most recent first.
	if strings.Index(got, "| KOPI | 2 |") > strings.Index(got, "| LADA | 100 |") {
		t.Errorf("recent transactions are not newest first:\n%s", got)
	}
}

func TestDashboardEmpty(t *testing.T) {
	got := Dashboard(hasilbumi.NewDashboard(nil), Options{})
	assertContains(t, got, "No stock yet.", "No transactions.", "**Profit**", "**0** transactions")
}

func TestReport(t *testing.T) {
	txs := []hasilbumi.Transaction{
		newTx(t, "2024-03-01", hasilbumi.Buy, "LADA", 10, 100),
		newTx(t, "2024-03-02", hasilbumi.Sell, "LADA", 10, 150),
		newTx(t, "2024-04-02", hasilbumi.Sell, "LADA", 10, 150),
	}
	f := hasilbumi.Filter{Period: date.Monthly, Anchor: date.MustParse("2024-03-15"), Item: "LADA"}
	got := Report(hasilbumi.NewReport(txs, nil, f), Options{Currency: "USD"})

	assertContains(t, got,
		"# Monthly report 2024-03",
		"Item: **LADA**, from 2024-03-01 to 2024-03-31.",
		"| Purchases | $1,000.00 | 10 |",
		"| Sales | $1,500.00 | 10 |",
		"| **Profit** | **$500.00** | |",
	)
	if strings.Contains(got, "2024-04-02") {
		t.Errorf("report contains a transaction out of the period:\n%s", got)
	}
}

func TestItems(t *testing.T) {
	stock := map[string]hasilbumi.Quantity{"LADA": hasilbumi.Q(5), "VANILI": hasilbumi.Q(2), "PALA": hasilbumi.Q(0)}
	got := Items([]string{"LADA", "KOPI"}, stock)
	assertContains(t, got, "| LADA | 5 |", "| KOPI | - |", "## Not in the catalog", "| VANILI | 2 |")
	if strings.Contains(got, "PALA") {
		t.Errorf("items with no stock left should not be listed:\n%s", got)
	}

	got = Items([]string{"LADA"}, map[string]hasilbumi.Quantity{"LADA": hasilbumi.Q(1)})
	if strings.Contains(got, "Not in the catalog") {
		t.Errorf("empty section printed:\n%s", got)
	}
}

func TestHTML(t *testing.T) {
	var b strings.Builder
	md := "# Report\n\n| Item | Stock |\n|---|---|\n| LADA | 5 |\n"
	if err := HTML(&b, "A <report>", md); err != nil {
		t.Fatalf("HTML() error: %v", err)
	}
	assertContains(t, b.String(), "<title>A &lt;report&gt;</title>", "<h1>Report</h1>", "<table>", "<td>LADA</td>")
}

func TestTableCellsEscapePipes(t *testing.T) {
	txs := []hasilbumi.Transaction{newTx(t, "2024-03-01", hasilbumi.Buy, "A|B", 3, 10)}
	dashboard := Dashboard(hasilbumi.NewDashboard(txs), Options{Currency: "USD"})
	items := Items([]string{"A|B", "C|D"}, map[string]hasilbumi.Quantity{"A|B": hasilbumi.Q(3), "E|F": hasilbumi.Q(1)})

	testCases := []struct {
		got     string
		row     string
		columns int
	}{
		{dashboard, `| A\|B | 3 |`, 2},
		{dashboard, `| 2024-03-01 | BUY | A\|B | 3 | $10.00 | $30.00 |`, 6},
		{items, `| A\|B | 3 |`, 2},
		{items, `| C\|D | - |`, 2},
		{items, `| E\|F | 1 |`, 2},
	}
	for _, tc := range testCases {
		assertContains(t, tc.got, tc.row)
		if got := strings.Count(tc.row, "|") - strings.Count(tc.row, `\|`) - 1; got != tc.columns {
			t.Errorf("%q has %d columns, want %d", tc.row, got, tc.columns)
		}
	}
}
