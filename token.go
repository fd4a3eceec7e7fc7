package questions

type Token struct {
	Term string
	Kana string
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term}
	for _, option := range options {
		option(&token)
	}
	return token
}

func SetKana(kana string) TokenOption {
	return func(s *Token) {
		s.Kana = kana
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

// Terms は解析後の語句を出現順に返す
func (ts TokenStream) Terms() TokenSequence {
	terms := make(TokenSequence, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// TokenSequence は文書または文の正規化済み語句列。重複はそのまま保持する
type TokenSequence []string

// Count は語句の出現回数(TF)を返す
func (ts TokenSequence) Count(term string) int {
	var c int
	for _, t := range ts {
		if t == term {
			c++
		}
	}
	return c
}

func (ts TokenSequence) Contains(term string) bool {
	for _, t := range ts {
		if t == term {
			return true
		}
	}
	return false
}
