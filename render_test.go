package moneyfmt

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderNumber(t *testing.T) {
	us := symbols{group: ",", decimal: ".", exponential: "E"}
	de := symbols{group: ".", decimal: ",", exponential: "E"}
	usd := Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2, PosPrefix: "¤", NegPrefix: "-¤", GroupSize: 3, LastGroupSize: 3}
	inr := Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2, PosPrefix: "¤", NegPrefix: "-¤", GroupSize: 2, LastGroupSize: 3}
	eur := Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2, PosSuffix: " ¤", NegPrefix: "-", NegSuffix: " ¤", GroupSize: 3, LastGroupSize: 3}
	acc := Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2, PosPrefix: "¤", NegPrefix: "(¤", NegSuffix: ")", GroupSize: 3, LastGroupSize: 3}
	flat := Pattern{MinInt: 1, MinFrac: 0, MaxFrac: 3, NegPrefix: "-"}

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num        string
			p          Pattern
			sym        symbols
			digitsInfo string
			want       string
		}{
			{"0", usd, us, "", "¤0.00"},
			{"123", usd, us, "", "¤123.00"},
			{"1234.5", usd, us, "", "¤1,234.50"},
			{"-1234.5", usd, us, "", "-¤1,234.50"},
			{"1234567.891", usd, us, "", "¤1,234,567.89"},
			{"12345678.9", inr, us, "", "¤1,23,45,678.90"},
			{"-1234.5", eur, de, "", "-1.234,50 ¤"},
			{"-1234.5", acc, us, "", "(¤1,234.50)"},
			{"0.5", usd, us, "", "¤0.50"},
			{"0.001", usd, us, "", "¤0.00"},
			{"-0.001", usd, us, "", "¤0.00"},
			{"-0.004", acc, us, "", "¤0.00"},
			{"-0.005", acc, us, "", "(¤0.01)"},
			{"5.1234", usd, us, "5.2-2", "¤00,005.12"},
			{"5.1234", usd, us, ".0-3", "¤5.123"},
			{"12", usd, us, "1.1-1", "¤12.0"},
			{"5.1", usd, us, ".0-3", "¤5.1"},
			{"5", usd, us, ".0-3", "¤5"},
			{"5", usd, us, "1.0-0", "¤5"},
			{"5.5", usd, us, "1.0-0", "¤6"},
			{"5", usd, us, ".4", "¤5.0000"},
			{"1234", flat, us, "", "1234"},
			{"0.0001", flat, us, "", "0.000"},
			{"-0.0001", flat, us, "", "0.000"},
			{"1.2999", flat, us, ".0-2", "1.30"},
			{"999.999", usd, us, "", "¤1,000.00"},
			{"123456789012345678.9", usd, us, "", "¤123,456,789,012,345,678.90"},
		}
		for _, p := range parsers {
			for _, tt := range tests {
				n := mustParse(t, p.parse, tt.num)
				got, err := renderNumber(n, tt.p, tt.sym, tt.digitsInfo)
				if err != nil {
					t.Errorf("%v: renderNumber(%v, %v, %q) failed: %v", p.name, tt.num, tt.p, tt.digitsInfo, err)
					continue
				}
				if got != tt.want {
					t.Errorf("%v: renderNumber(%v, %v, %q) = %q, want %q", p.name, tt.num, tt.p, tt.digitsInfo, got, tt.want)
				}
			}
		}
	})

	t.Run("exponent", func(t *testing.T) {
		tests := []struct {
			num  string
			p    Pattern
			want string
		}{
			{"1e21", usd, "¤1.00E+21"},
			{"-1.5e22", usd, "-¤1.50E+22"},
			{"123456789012345678901234", usd, "¤1.23E+23"},
			{"1e20", usd, "¤100,000,000,000,000,000,000.00"},
			{"1e21", flat, "1E+21"},
			{"-9.9999e21", usd, "-¤1.00E+22"},
			{"9.995e21", usd, "¤1.00E+22"},
			{"9.994e21", usd, "¤9.99E+21"},
		}
		for _, tt := range tests {
			n := mustParse(t, ParseShopspring, tt.num)
			got, err := renderNumber(n, tt.p, us, "")
			if err != nil {
				t.Errorf("renderNumber(%v, %v) failed: %v", tt.num, tt.p, err)
				continue
			}
			if got != tt.want {
				t.Errorf("renderNumber(%v, %v) = %q, want %q", tt.num, tt.p, got, tt.want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, p := range parsers {
			n := mustParse(t, p.parse, "-1234.5678")
			before := plain(n)
			first, err := renderNumber(n, usd, us, "")
			if err != nil {
				t.Fatalf("%v: renderNumber failed: %v", p.name, err)
			}
			second, err := renderNumber(n, usd, us, "")
			if err != nil {
				t.Fatalf("%v: renderNumber failed: %v", p.name, err)
			}
			if first != second || first != "-¤1,234.57" {
				t.Errorf("%v: renderNumber twice = %q, %q, want %q", p.name, first, second, "-¤1,234.57")
			}
			if after := plain(n); after != before {
				t.Errorf("%v: renderNumber changed its input from %v to %v", p.name, before, after)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		n := mustParse(t, ParseShopspring, "1")
		tests := []struct {
			digitsInfo string
			want       error
		}{
			{"abc", ErrInvalidDigitsInfo},
			{"1", ErrInvalidDigitsInfo},
			{"1.3-1", ErrInvalidFractionBounds},
			{".5-2", ErrInvalidFractionBounds},
		}
		for _, tt := range tests {
			_, err := renderNumber(n, usd, us, tt.digitsInfo)
			if !errors.Is(err, tt.want) {
				t.Errorf("renderNumber(1, %q) = %v, want %v", tt.digitsInfo, err, tt.want)
			}
		}
	})
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		digits         string
		size, lastSize int
		want           string
	}{
		{"1", 3, 3, "1"},
		{"123", 3, 3, "123"},
		{"1234", 3, 3, "1 234"},
		{"1234567", 3, 3, "1 234 567"},
		{"12345678", 2, 3, "1 23 45 678"},
		{"1234567", 0, 3, "1234 567"},
		{"1234567", 3, 0, "1234567"},
		{"000005", 3, 3, "000 005"},
	}
	for _, tt := range tests {
		groups := groupDigits([]byte(tt.digits), tt.size, tt.lastSize)
		parts := make([]string, len(groups))
		for i, g := range groups {
			parts[i] = string(g)
		}
		if got := strings.Join(parts, " "); got != tt.want {
			t.Errorf("groupDigits(%q, %v, %v) = %q, want %q", tt.digits, tt.size, tt.lastSize, got, tt.want)
		}
	}
}
