package moneyfmt

// Currency formatting data derived from CLDR.
var builtinLocales = []Locale{
	{Tag: "en-US", CurrencyPattern: "¤#,##0.00", Decimal: ".", Group: ",", MinusSign: "-", Exponential: "E"},
	{Tag: "en-GB", CurrencyPattern: "¤#,##0.00", Decimal: ".", Group: ",", MinusSign: "-", Exponential: "E"},
	{Tag: "en-IN", CurrencyPattern: "¤#,##,##0.00", Decimal: ".", Group: ",", MinusSign: "-", Exponential: "E"},
	{Tag: "de-DE", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: ".", MinusSign: "-", Exponential: "E"},
	{Tag: "de-AT", CurrencyPattern: "¤\u00a0#,##0.00", Decimal: ",", Group: "\u00a0", MinusSign: "-", Exponential: "E", CurrencyGroup: "."},
	{Tag: "de-CH", CurrencyPattern: "¤\u00a0#,##0.00;¤-#,##0.00", Decimal: ".", Group: "’", MinusSign: "-", Exponential: "E"},
	{Tag: "fr-FR", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: "\u202f", MinusSign: "-", Exponential: "E"},
	{Tag: "es-ES", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: ".", MinusSign: "-", Exponential: "E"},
	{Tag: "it-IT", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: ".", MinusSign: "-", Exponential: "E"},
	{Tag: "nl-NL", CurrencyPattern: "¤\u00a0#,##0.00;¤\u00a0-#,##0.00", Decimal: ",", Group: ".", MinusSign: "-", Exponential: "E"},
	{Tag: "pt-BR", CurrencyPattern: "¤\u00a0#,##0.00", Decimal: ",", Group: ".", MinusSign: "-", Exponential: "E"},
	{Tag: "ru-RU", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: "\u00a0", MinusSign: "-", Exponential: "E"},
	{Tag: "sv-SE", CurrencyPattern: "#,##0.00\u00a0¤", Decimal: ",", Group: "\u00a0", MinusSign: "\u2212", Exponential: "×10^"},
	{Tag: "ja-JP", CurrencyPattern: "¤#,##0.00", Decimal: ".", Group: ",", MinusSign: "-", Exponential: "E"},
	{Tag: "zh-CN", CurrencyPattern: "¤#,##0.00", Decimal: ".", Group: ",", MinusSign: "-", Exponential: "E"},
}

// DefaultLocales is the built-in locale table. Its preferred locale is "en-US".
var DefaultLocales = NewLocaleTable(builtinLocales...)
