package moneyfmt

import (
	"errors"
	"testing"
)

func TestParseDigitsInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want DigitsInfo
		}{
			{"1.2-2", DigitsInfo{MinInt: 1, MinFrac: 2, MaxFrac: 2, HasMinInt: true, HasMinFrac: true, HasMaxFrac: true}},
			{"1.0-3", DigitsInfo{MinInt: 1, MinFrac: 0, MaxFrac: 3, HasMinInt: true, HasMinFrac: true, HasMaxFrac: true}},
			{"5.2-2", DigitsInfo{MinInt: 5, MinFrac: 2, MaxFrac: 2, HasMinInt: true, HasMinFrac: true, HasMaxFrac: true}},
			{".0-3", DigitsInfo{MinFrac: 0, MaxFrac: 3, HasMinFrac: true, HasMaxFrac: true}},
			{"3.", DigitsInfo{MinInt: 3, HasMinInt: true}},
			{".1", DigitsInfo{MinFrac: 1, HasMinFrac: true}},
			{".", DigitsInfo{}},
			{"1000.0-1000", DigitsInfo{MinInt: 1000, MinFrac: 0, MaxFrac: 1000, HasMinInt: true, HasMinFrac: true, HasMaxFrac: true}},
		}
		for _, tt := range tests {
			got, err := ParseDigitsInfo(tt.s)
			if err != nil {
				t.Errorf("ParseDigitsInfo(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseDigitsInfo(%q) = %+v, want %+v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "abc", "1", "1.2.3", "1.-2", "-1.2", "1.2-", " 1.2", "a.2-3",
			"99999999999999999999.",
			".4294967298", "1001.", ".1-1001", "4294967297.",
		}
		for _, tt := range tests {
			_, err := ParseDigitsInfo(tt)
			if !errors.Is(err, ErrInvalidDigitsInfo) {
				t.Errorf("ParseDigitsInfo(%q) = %v, want %v", tt, err, ErrInvalidDigitsInfo)
			}
		}
	})
}

func TestMustParseDigitsInfo(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseDigitsInfo(\"abc\") did not panic")
			}
		}()
		MustParseDigitsInfo("abc")
	})
}

func TestDigitsInfo_apply(t *testing.T) {
	base := Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2}
	tests := []struct {
		s    string
		want Pattern
	}{
		{".", Pattern{MinInt: 1, MinFrac: 2, MaxFrac: 2}},
		{"5.", Pattern{MinInt: 5, MinFrac: 2, MaxFrac: 2}},
		{".0-3", Pattern{MinInt: 1, MinFrac: 0, MaxFrac: 3}},
		{".1", Pattern{MinInt: 1, MinFrac: 1, MaxFrac: 2}},
		{".4", Pattern{MinInt: 1, MinFrac: 4, MaxFrac: 4}},
		{"1.1-1", Pattern{MinInt: 1, MinFrac: 1, MaxFrac: 1}},
		{"1.3-1", Pattern{MinInt: 1, MinFrac: 3, MaxFrac: 1}},
	}
	for _, tt := range tests {
		got := MustParseDigitsInfo(tt.s).apply(base)
		if got != tt.want {
			t.Errorf("%q.apply(%+v) = %+v, want %+v", tt.s, base, got, tt.want)
		}
	}
}
