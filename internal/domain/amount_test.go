package domain

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string // expected String() rendering
		wantErr bool
	}{
		{name: "integer", input: "3", want: "3"},
		{name: "one place", input: "1.5", want: "1.5"},
		{name: "four places", input: "0.0001", want: "0.0001"},
		{name: "trailing zeros normalized", input: "1.5000", want: "1.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "zero with places", input: "0.00", want: "0"},
		{name: "negative", input: "-2.75", want: "-2.75"},
		{name: "five places", input: "0.00001", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got.String())
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	a := MustParseAmount("1.0001")
	b := MustParseAmount("2.0002")

	if got := a.Add(b).String(); got != "3.0003" {
		t.Fatalf("expected 3.0003, got %s", got)
	}
	if got := b.Sub(a).String(); got != "1.0001" {
		t.Fatalf("expected 1.0001, got %s", got)
	}
	if got := a.Neg().String(); got != "-1.0001" {
		t.Fatalf("expected -1.0001, got %s", got)
	}
	if !a.Neg().Neg().Equal(a) {
		t.Fatal("double negation should be identity")
	}
}

func TestAmountExactness(t *testing.T) {
	// 0.1 + 0.2 is the classic binary floating point failure case.
	sum := MustParseAmount("0.1").Add(MustParseAmount("0.2"))
	if !sum.Equal(MustParseAmount("0.3")) {
		t.Fatalf("expected exactly 0.3, got %s", sum)
	}

	// Repeated addition of 0.0001 must not drift.
	total := ZeroAmount
	step := MustParseAmount("0.0001")
	for i := 0; i < 10000; i++ {
		total = total.Add(step)
	}
	if !total.Equal(MustParseAmount("1")) {
		t.Fatalf("expected exactly 1 after 10000 steps, got %s", total)
	}
}

func TestAmountOrdering(t *testing.T) {
	small := MustParseAmount("-0.0001")
	zero := ZeroAmount
	big := MustParseAmount("0.0001")

	if small.Cmp(zero) != -1 || zero.Cmp(big) != -1 || big.Cmp(small) != 1 {
		t.Fatal("ordering is inconsistent")
	}
	if zero.Cmp(MustParseAmount("0.0000")) != 0 {
		t.Fatal("zero should equal 0.0000")
	}
	if !small.IsNegative() {
		t.Fatal("-0.0001 should be negative")
	}
	if zero.IsNegative() {
		t.Fatal("zero should not be negative")
	}
	if !zero.IsZero() {
		t.Fatal("zero value should be zero")
	}
}

func TestAmountEqualIgnoresScale(t *testing.T) {
	if !MustParseAmount("1.5").Equal(MustParseAmount("1.50")) {
		t.Fatal("1.5 should equal 1.50")
	}
}
