/*
Package moneyfmt formats arbitrary-precision decimal numbers as currency
according to locale rules.
It works with the numbers of the [github.com/govalues/decimal],
[github.com/shopspring/decimal] and [gopkg.in/inf.v0] packages without
converting them to floating point, so no digit is ever lost.

# Features

  - Locale number patterns, such as "¤#,##0.00" or "#,##,##0.00 ¤"
  - Digits info overrides, such as "1.0-3"
  - Half-up rounding to the fraction digits of the currency
  - Currency codes, wide and narrow symbols from CLDR
  - Exponential notation for very large numbers
  - Immutable values, ensuring safe usage across multiple goroutines

# Representation

A [Number] is any decimal that can report its digits, round half up and
shift its decimal point.
The [FromGovalues], [FromShopspring] and [FromInf] constructors adapt the
supported decimal packages.

A [Pattern] is the parsed form of a locale number pattern and a
[DigitsInfo] is the parsed form of a digits info string.
A [Currency] is an integer index into in-memory arrays that store the code,
numeric code and scale of each ISO 4217 currency.
An [Amount] is a [Number] in a [Currency].

# Formatting

[FormatCurrency] formats a number with a locale pattern, a currency text
and the fraction digits of a currency code.
A [Formatter] does the same with custom [LocaleSource] and [CurrencySource]
data, and a [Pipe] accepts loosely typed values such as strings, integers
and floats.

# Rounding

Numbers are rounded half up, that is ties are rounded away from zero,
to the number of fraction digits of the currency or of the digits info.
Rounding never modifies the original number.

# Errors

Errors may occur when a locale is unknown, a locale pattern or a digits
info string is malformed, or the minimum number of fraction digits exceeds
the maximum.
Formatting errors wrap [FormatError] values and sentinel errors, such as
[ErrInvalidDigitsInfo], that can be checked with [errors.Is].
*/
package moneyfmt
