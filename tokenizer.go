package questions

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/kotaroooo0/questions/morphology"
)

type Tokenizer interface {
	Tokenize(string) TokenStream
}

type StandardTokenizer struct{}

func NewStandardTokenizer() StandardTokenizer {
	return StandardTokenizer{}
}

func (t StandardTokenizer) Tokenize(s string) TokenStream {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		tokens[i] = NewToken(term)
	}
	return NewTokenStream(tokens)
}

// ProseTokenizer は Treebank 形式で単語分割する。記号は独立したトークンとして残るので PunctuationFilter と組み合わせる
type ProseTokenizer struct{}

func NewProseTokenizer() ProseTokenizer {
	return ProseTokenizer{}
}

func (t ProseTokenizer) Tokenize(s string) TokenStream {
	doc, err := prose.NewDocument(s,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		// proseが失敗するのは入力が壊れている場合のみなので単純な分割で代替する
		return StandardTokenizer{}.Tokenize(s)
	}
	pTokens := doc.Tokens()
	tokens := make([]Token, len(pTokens))
	for i, pt := range pTokens {
		tokens[i] = NewToken(pt.Text)
	}
	return NewTokenStream(tokens)
}

type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) MorphologicalTokenizer {
	return MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t MorphologicalTokenizer) Tokenize(s string) TokenStream {
	mTokens := t.morphology.Analyze(s)
	tokens := make([]Token, len(mTokens))
	for i, t := range mTokens {
		tokens[i] = NewToken(t.Term, SetKana(t.Kana))
	}
	return NewTokenStream(tokens)
}
