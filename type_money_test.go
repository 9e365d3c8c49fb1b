package optfolio

import "testing"

func TestMoneySignedString(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{in: M(450, "USD"), want: "+$450.00"},
		{in: M(-100, "USD"), want: "-$100.00"},
		{in: M(0, "USD"), want: "-"},
		{in: M(12.5, "USD"), want: "+$12.50"},
	}
	for _, c := range cases {
		if got := c.in.SignedString(); got != c.want {
			t.Errorf("SignedString(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(200, "USD")
	b := M(-50, "USD")
	if got := a.Add(b); !got.Equal(M(150, "USD")) {
		t.Errorf("Add = %v, want 150", got)
	}
	if got := a.Neg(); !got.Equal(M(-200, "USD")) {
		t.Errorf("Neg = %v, want -200", got)
	}
	// The zero value has a weak currency that follows its operand.
	var zero Money
	if got := zero.Add(a); got.Currency() != "USD" {
		t.Errorf("currency = %q, want USD", got.Currency())
	}
}
