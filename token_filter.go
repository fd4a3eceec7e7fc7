package questions

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		lower := strings.ToLower(token.Term)
		r[i] = NewToken(lower, SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

// PunctuationFilter は記号のみで構成されたトークンを取り除く
type PunctuationFilter struct{}

func NewPunctuationFilter() PunctuationFilter {
	return PunctuationFilter{}
}

func (f PunctuationFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if isPunctuation(token.Term) {
			continue
		}
		r = append(r, token)
	}
	return NewTokenStream(r)
}

func isPunctuation(term string) bool {
	for _, c := range term {
		if !unicode.IsPunct(c) && !unicode.IsSymbol(c) {
			return false
		}
	}
	return true
}

type StopWordFilter struct {
	stopWords map[string]struct{}
}

func NewStopWordFilter(stopWords []string) StopWordFilter {
	m := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		m[w] = struct{}{}
	}
	return StopWordFilter{
		stopWords: m,
	}
}

func (f StopWordFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if _, ok := f.stopWords[token.Term]; !ok {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

type StemmerFilter struct{}

func NewStemmerFilter() StemmerFilter {
	return StemmerFilter{}
}

func (f StemmerFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		stemmed := english.Stem(token.Term, false)
		r[i] = NewToken(stemmed, SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana)), SetKana(token.Kana))
	}
	return NewTokenStream(r)
}

type KanaReadingformFilter struct{}

func NewKanaReadingformFilter() KanaReadingformFilter {
	return KanaReadingformFilter{}
}

func (f KanaReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	// カナはTokenizerで既に変換されているので語句として採用する
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		r[i] = NewToken(token.Kana, SetKana(token.Kana))
	}
	return NewTokenStream(r)
}
