package questions

import "sort"

// Query は検索語句の集合。
// スコアの加算順を固定するため語句は辞書順に保持する
type Query struct {
	terms []string
}

func NewQuery(tokens TokenSequence) Query {
	set := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := set[t]; ok {
			continue
		}
		set[t] = struct{}{}
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return Query{terms: terms}
}

// ParseQuery はアナライザで文字列を解析してクエリを作る
func ParseQuery(text string, analyzer Analyzer) Query {
	return NewQuery(analyzer.Tokenize(text))
}

func (q Query) Terms() []string {
	return q.terms
}

func (q Query) Size() int {
	return len(q.terms)
}

func (q Query) IsEmpty() bool {
	return len(q.terms) == 0
}
