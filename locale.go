package moneyfmt

import (
	"fmt"

	"golang.org/x/text/language"
)

// NumberSymbol identifies a locale-specific number symbol.
type NumberSymbol int

const (
	Decimal         NumberSymbol = iota // decimal separator, e.g. "."
	Group                               // grouping separator, e.g. ","
	MinusSign                           // minus sign, e.g. "-"
	Exponential                         // exponent marker, e.g. "E"
	CurrencyDecimal                     // decimal separator of currency amounts
	CurrencyGroup                       // grouping separator of currency amounts
)

// String returns the name of the symbol.
func (s NumberSymbol) String() string {
	switch s {
	case Decimal:
		return "Decimal"
	case Group:
		return "Group"
	case MinusSign:
		return "MinusSign"
	case Exponential:
		return "Exponential"
	case CurrencyDecimal:
		return "CurrencyDecimal"
	case CurrencyGroup:
		return "CurrencyGroup"
	}
	return fmt.Sprintf("NumberSymbol(%d)", int(s))
}

// Locale holds the currency formatting data of a locale.
type Locale struct {
	Tag             string // BCP 47 language tag, e.g. "en-US"
	CurrencyPattern string // e.g. "¤#,##0.00"

	Decimal         string
	Group           string
	MinusSign       string
	Exponential     string
	CurrencyDecimal string // empty if equal to Decimal
	CurrencyGroup   string // empty if equal to Group
}

// Symbol returns the locale string for the given symbol.
// Currency separators fall back to the plain ones.
func (l Locale) Symbol(s NumberSymbol) string {
	switch s {
	case Decimal:
		return l.Decimal
	case Group:
		return l.Group
	case MinusSign:
		return l.MinusSign
	case Exponential:
		return l.Exponential
	case CurrencyDecimal:
		if l.CurrencyDecimal == "" {
			return l.Decimal
		}
		return l.CurrencyDecimal
	case CurrencyGroup:
		if l.CurrencyGroup == "" {
			return l.Group
		}
		return l.CurrencyGroup
	}
	return ""
}

// LocaleSource provides locale data by language tag.
type LocaleSource interface {
	Locale(tag string) (Locale, error)
}

// LocaleTable is a [LocaleSource] over a fixed set of locales.
// Tags are matched using the [language.Matcher] rules, so "en-AU" finds
// the closest English locale and "de-LI" the closest German one.
// LocaleTable is safe for concurrent use by multiple goroutines.
type LocaleTable struct {
	locales []Locale
	tags    []language.Tag
	matcher language.Matcher
}

// NewLocaleTable returns a table over the given locales.
// The first locale is preferred when tags match several locales equally well.
// It panics if a locale tag is not well-formed.
func NewLocaleTable(locales ...Locale) *LocaleTable {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.MustParse(l.Tag)
	}
	return &LocaleTable{
		locales: append([]Locale(nil), locales...),
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}
}

// Locale returns the locale that best matches the tag.
// Locale returns an error if the tag is not well-formed or there is no
// locale for its language.
func (t *LocaleTable) Locale(tag string) (Locale, error) {
	lt, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("parsing locale %q: %w: %w", tag, ErrUnknownLocale, err)
	}
	if len(t.locales) == 0 {
		return Locale{}, fmt.Errorf("looking up locale %q: %w", tag, ErrUnknownLocale)
	}
	_, i, conf := t.matcher.Match(lt)
	if conf == language.No || !sameLanguage(lt, t.tags[i]) {
		return Locale{}, fmt.Errorf("looking up locale %q: %w", tag, ErrUnknownLocale)
	}
	return t.locales[i], nil
}

// sameLanguage reports whether both tags have the same base language.
// The matcher falls back to the preferred locale for unsupported languages.
func sameLanguage(a, b language.Tag) bool {
	ab, _ := a.Base()
	bb, _ := b.Base()
	return ab == bb
}

// Tags returns the tags of all locales in the table.
func (t *LocaleTable) Tags() []string {
	tags := make([]string, len(t.locales))
	for i, l := range t.locales {
		tags[i] = l.Tag
	}
	return tags
}
