package moneyfmt

import (
	"errors"
	"testing"
)

func TestRoundNumber(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num              string
			minFrac, maxFrac int
			wantDigits       string
			wantExp          int
		}{
			{"123", 2, 2, "12300", 3},
			{"123.5", 2, 2, "12350", 3},
			{"5.1234", 2, 2, "512", 1},
			{"5.1234", 0, 3, "5123", 1},
			{"5.1", 0, 3, "51", 1},
			{"5.005", 2, 2, "501", 1},
			{"9.995", 2, 2, "1000", 2},
			{"-9.995", 2, 2, "1000", 2},
			{"0.001", 2, 2, "00", 0},
			{"0.001", 3, 3, "1", -2},
			{"0.0012", 5, 5, "120", -2},
			{"12000", 0, 0, "12000", 5},
			{"12000", 2, 2, "1200000", 5},
			{"0", 2, 2, "00", 0},
		}
		for _, p := range parsers {
			for _, tt := range tests {
				n := mustParse(t, p.parse, tt.num)
				got, err := roundNumber(n, tt.minFrac, tt.maxFrac)
				if err != nil {
					t.Errorf("%v: roundNumber(%v, %v, %v) failed: %v", p.name, tt.num, tt.minFrac, tt.maxFrac, err)
					continue
				}
				if string(got.Digits) != tt.wantDigits || got.Exp != tt.wantExp {
					t.Errorf("%v: roundNumber(%v, %v, %v) = %q/%v, want %q/%v",
						p.name, tt.num, tt.minFrac, tt.maxFrac, got.Digits, got.Exp, tt.wantDigits, tt.wantExp)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		n := mustParse(t, ParseShopspring, "1.5")
		_, err := roundNumber(n, 3, 1)
		if !errors.Is(err, ErrInvalidFractionBounds) {
			t.Errorf("roundNumber(1.5, 3, 1) = %v, want %v", err, ErrInvalidFractionBounds)
		}
	})
}
