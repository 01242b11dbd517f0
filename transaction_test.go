package hasilbumi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/neromancy/hasilbumi/date"
)

func TestNewTransaction(t *testing.T) {
	on := date.MustParse("2024-03-15")
	got, err := NewTransaction(on, Sell, "LADA", Q(12.5), M(62000))
	if err != nil {
		t.Fatalf("NewTransaction() unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Errorf("NewTransaction() has no ID")
	}
	if !got.Total.Equal(M(775000)) {
		t.Errorf("NewTransaction().Total = %v, want 775000", got.Total)
	}
}

func TestNewTransactionUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for range 1000 {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() returned %q twice", id)
		}
		if id <= prev {
			t.Fatalf("NewID() = %q is not after %q", id, prev)
		}
		seen[id] = true
		prev = id
	}
}

func TestNewTransactionInvalid(t *testing.T) {
	on := date.MustParse("2024-03-15")
	testCases := []struct {
		name  string
		on    date.Date
		typ   TxType
		item  string
		qty   Quantity
		price Money
	}{
		{"missing date", date.Date{}, Buy, "LADA", Q(1), M(1)},
		{"unknown type", on, TxType("GIVE"), "LADA", Q(1), M(1)},
		{"missing item", on, Buy, "  ", Q(1), M(1)},
		{"negative quantity", on, Buy, "LADA", Q(-1), M(1)},
		{"negative price", on, Sell, "LADA", Q(1), M(-1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(tc.on, tc.typ, tc.item, tc.qty, tc.price)
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("NewTransaction() error = %v, want %v", err, ErrInvalidTransaction)
			}
		})
	}
}

func TestValidateTotalMismatch(t *testing.T) {
	v := tx(t, "2024-03-15", Buy, "LADA", 3, 100)
	v.Total = M(301)
	if err := v.Validate(); !errors.Is(err, ErrTotalMismatch) {
		t.Errorf("Validate() = %v, want %v", err, ErrTotalMismatch)
	}
}

func TestValidateFloatTotal(t *testing.T) {
	total, err := ParseMoney("3.3000000000000003")
	if err != nil {
		t.Fatalf("ParseMoney() error: %v", err)
	}
	v := Transaction{ID: "1", Date: date.MustParse("2024-03-15"), Type: Buy, Item: "LADA", Qty: Q(1.1), Price: M(3), Total: total}
	if err := v.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestParseType(t *testing.T) {
	testCases := []struct {
		in      string
		want    TxType
		wantErr bool
	}{
		{"BUY", Buy, false},
		{"buy", Buy, false},
		{"BELI", Buy, false},
		{"SELL", Sell, false},
		{"jual", Sell, false},
		{"", "", true},
		{"TRADE", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTransactionJSON(t *testing.T) {
	v := Transaction{
		ID:    "01J0000000000000000000000",
		Date:  date.MustParse("2024-03-15"),
		Type:  Buy,
		Item:  "LADA",
		Qty:   Q(1.5),
		Price: M(1000),
		Total: M(1500),
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"id":"01J0000000000000000000000","date":"2024-03-15","type":"BUY","item":"LADA","qty":1.5,"price":1000,"total":1500}`
	if string(b) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", b, want)
	}

	var got Transaction
	if err := json.Unmarshal([]byte(`{"id":"x","date":"2024-03-15","type":"JUAL","item":"LADA","qty":"2","price":10,"total":20}`), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Type != Sell || !got.Qty.Equal(Q(2)) || !got.Total.Equal(M(20)) {
		t.Errorf("Unmarshal() = %+v", got)
	}
}
