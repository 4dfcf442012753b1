package moneyfmt_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/govalues/decimal"
	sdecimal "github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	inf "gopkg.in/inf.v0"

	"github.com/govalues/moneyfmt"
)

func TestPipe_Transform(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		type TC struct {
			value      any
			code       string
			display    any
			digitsInfo string
			locale     string
			want       string
		}

		tcs := []TC{
			{value: 123, code: "USD", display: moneyfmt.DisplaySymbol, want: "$123.00"},
			{value: 12, code: "EUR", display: moneyfmt.DisplayCode, digitsInfo: "1.1-1", want: "EUR12.0"},
			{value: 5.1234, code: "USD", display: moneyfmt.DisplayCode, want: "USD5.12"},
			{value: 5.1234, code: "CAD", display: nil, want: "CA$5.12"},
			{value: 5.1234, code: "CAD", display: moneyfmt.DisplaySymbolNarrow, want: "$5.12"},
			{value: 5.1234, code: "CAD", display: moneyfmt.DisplaySymbolNarrow, digitsInfo: "5.2-2", want: "$00,005.12"},
			{value: "123.500", code: "USD", want: "$123.50"},
			{value: "123456789012345678.90", code: "USD", want: "$123,456,789,012,345,678.90"},
			{value: 5.1234, code: "USD", display: moneyfmt.DisplayCode, digitsInfo: ".0-3", want: "USD5.123"},
			{value: 5.1234, code: "", want: "$5.12"},
			{value: 5.1234, code: "unexisting_ISO_code", display: moneyfmt.DisplaySymbol, want: "unexisting_ISO_code5.12"},
			{value: 5.1234, code: "USD", display: "Custom name", want: "Custom name5.12"},
			{value: 5.1234, code: "USD", display: "", want: "5.12"},
			{value: -5.1234, code: "USD", want: "-$5.12"},
			{value: int64(-7), code: "JPY", want: "-¥7"},
			{value: uint8(7), code: "USD", want: "$7.00"},
			{value: float32(0.5), code: "USD", want: "$0.50"},
			{value: decimal.MustParse("5.005"), code: "USD", want: "$5.01"},
			{value: sdecimal.RequireFromString("5.125"), code: "USD", want: "$5.13"},
			{value: inf.NewDec(-5125, 3), code: "USD", want: "-$5.13"},
			{value: moneyfmt.FromGovalues(decimal.MustParse("1")), code: "USD", want: "$1.00"},
			{value: 1234.5, code: "EUR", locale: "de-DE", want: "1.234,50\u00a0€"},
		}

		for i, tc := range tcs {
			var p moneyfmt.Pipe
			got, ok, err := p.Transform(tc.value, tc.code, tc.display, tc.digitsInfo, tc.locale)
			require.NoError(t, err, "tcs[%d]", i)
			require.True(t, ok, "tcs[%d]", i)
			require.Equal(t, tc.want, got, "tcs[%d]", i)
		}
	})

	t.Run("default locale", func(t *testing.T) {
		p := moneyfmt.Pipe{Locale: "de-CH"}
		got, ok, err := p.Transform(-1234.5, "CHF", moneyfmt.DisplayCode, "", "")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "CHF-1’234.50", got)

		got, _, err = p.Transform(-1234.5, "USD", moneyfmt.DisplayCode, "", "en-US")
		require.NoError(t, err)
		require.Equal(t, "-USD1,234.50", got)
	})

	t.Run("parser", func(t *testing.T) {
		p := moneyfmt.Pipe{Parse: moneyfmt.ParseInf}
		got, ok, err := p.Transform("0.005", "USD", nil, "", "")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "$0.01", got)
	})

	t.Run("empty", func(t *testing.T) {
		var p moneyfmt.Pipe
		for _, v := range []any{nil, "", math.NaN(), float32(math.NaN())} {
			got, ok, err := p.Transform(v, "USD", nil, "", "")
			require.NoError(t, err)
			require.False(t, ok)
			require.Empty(t, got)
		}
	})

	t.Run("deprecated display", func(t *testing.T) {
		var buf bytes.Buffer
		p := moneyfmt.Pipe{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

		got, ok, err := p.Transform(5.1234, "CAD", true, "", "")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "CA$5.12", got)
		require.Contains(t, buf.String(), "level=WARN")
		require.Contains(t, buf.String(), "symbolDisplay")

		got, _, err = p.Transform(5.1234, "CAD", false, "", "")
		require.NoError(t, err)
		require.Equal(t, "CAD5.12", got)
	})

	t.Run("error", func(t *testing.T) {
		type TC struct {
			value      any
			display    any
			digitsInfo string
			locale     string
			is         error
		}

		tcs := []TC{
			{value: struct{}{}},
			{value: "abc"},
			{value: math.Inf(1)},
			{value: 1, display: 42},
			{value: 1, digitsInfo: "abc", is: moneyfmt.ErrInvalidDigitsInfo},
			{value: 1, digitsInfo: "1.3-1", is: moneyfmt.ErrInvalidFractionBounds},
			{value: 1, locale: "tlh", is: moneyfmt.ErrUnknownLocale},
		}

		for i, tc := range tcs {
			var p moneyfmt.Pipe
			got, ok, err := p.Transform(tc.value, "USD", tc.display, tc.digitsInfo, tc.locale)
			require.Error(t, err, "tcs[%d]", i)
			require.False(t, ok, "tcs[%d]", i)
			require.Empty(t, got, "tcs[%d]", i)
			require.True(t, moneyfmt.ErrInvalidArgument.Has(err), "tcs[%d]: %v", i, err)
			require.Contains(t, err.Error(), "CurrencyPipe", "tcs[%d]", i)
			if tc.is != nil {
				require.True(t, errors.Is(err, tc.is), "tcs[%d]: %v", i, err)
			}
		}
	})
}
