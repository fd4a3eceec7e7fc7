package morphology

import (
	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome/v2/filter"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// 句読点・括弧・空白はいずれも品詞が記号
var symbolFilter = filter.NewPOSFilter(filter.POS{"記号"})

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

type KagomeOption func(*Kagome)

// WithNormalMode は検索モードの複合語分割を行わない
func WithNormalMode() KagomeOption {
	return func(k *Kagome) {
		k.mode = tokenizer.Normal
	}
}

func NewKagome(options ...KagomeOption) (*Kagome, error) {
	t, err := tokenizer.New(ipaneologd.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	k := &Kagome{
		kagome: t,
		mode:   tokenizer.Search,
	}
	for _, option := range options {
		option(k)
	}
	return k, nil
}

func (k *Kagome) Analyze(text string) []MorphologyToken {
	tokens := k.kagome.Analyze(text, k.mode)
	symbolFilter.Drop(&tokens)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		kana := token.Surface
		if len(features) >= 8 {
			kana = features[7]
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana))
	}
	return kagomeTokens
}
