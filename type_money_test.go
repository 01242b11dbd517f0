package hasilbumi

import "testing"

func TestMoneyFormat(t *testing.T) {
	testCases := []struct {
		in       Money
		currency string
		want     string
	}{
		{M(1234.5), "USD", "$1,234.50"},
		{M(-20), "USD", "-$20.00"},
		{M(0.005), "USD", "$0.01"},
		{M(5), "XYZ", "5.00 XYZ"},
	}
	for _, tc := range testCases {
		if got := tc.in.Format(tc.currency); got != tc.want {
			t.Errorf("%v.Format(%s) = %q, want %q", tc.in, tc.currency, got, tc.want)
		}
	}
}

func TestParseAmounts(t *testing.T) {
	q, err := ParseQuantity("12.5")
	if err != nil || !q.Equal(Q(12.5)) {
		t.Errorf("ParseQuantity(12.5) = %v, %v", q, err)
	}
	if _, err := ParseQuantity("12kg"); err == nil {
		t.Errorf("ParseQuantity(12kg) expected an error")
	}
	m, err := ParseMoney("115000")
	if err != nil || !m.Equal(M(115000)) {
		t.Errorf("ParseMoney(115000) = %v, %v", m, err)
	}
}

func TestMoneyIsExact(t *testing.T) {
	// 0.1 + 0.2 is not 0.3 with floats.
	if got := M(0.1).Add(M(0.2)); !got.Equal(M(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got)
	}
}

func TestMoneyNear(t *testing.T) {
	float := func(s string) Money {
		m, err := ParseMoney(s)
		if err != nil {
			t.Fatalf("ParseMoney(%s) error: %v", s, err)
		}
		return m
	}
	testCases := []struct {
		a, b Money
		want bool
	}{
		{M(3.3), M(3.3), true},
		{float("3.3000000000000003"), M(3.3), true},
		{float("0.8999999999999999"), M(0.9), true},
		{float("5499999999.999999"), M(5500000000), true},
		{M(3.31), M(3.3), false},
		{M(301), M(300), false},
		{M(0.000001), M(0), false},
		{M(0), M(0), true},
	}
	for _, tc := range testCases {
		if got := tc.a.Near(tc.b); got != tc.want {
			t.Errorf("%v.Near(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
