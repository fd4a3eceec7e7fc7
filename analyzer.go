package questions

// Analyzer は CharFilter -> Tokenizer -> TokenFilter の順に文字列を処理する
type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

// NewEnglishAnalyzer は小文字化・記号除去・ストップワード除去を行う英語用のアナライザを返す
func NewEnglishAnalyzer(tokenizer Tokenizer, stopWords []string) Analyzer {
	return NewAnalyzer(
		[]CharFilter{NewMappingCharFilter(TypographicMapper)},
		tokenizer,
		[]TokenFilter{NewLowercaseFilter(), NewPunctuationFilter(), NewStopWordFilter(stopWords)},
	)
}

func (a Analyzer) Analyze(s string) TokenStream {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream := a.tokenizer.Tokenize(s)
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream
}

// Tokenize は文字列を正規化済みの語句列に変換する
func (a Analyzer) Tokenize(s string) TokenSequence {
	return a.Analyze(s).Terms()
}
