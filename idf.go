package questions

import "math"

// IDFTable は語句から IDF への対応。コレクション中に一度でも現れた語句だけを持つ
type IDFTable map[string]float64

func (t IDFTable) Lookup(term string) (float64, bool) {
	idf, ok := t[term]
	return idf, ok
}

// ComputeIDF は idf(t) = ln(N / df(t)) を語彙全体について計算する。
// df(t) は t を一度でも含む要素の数で、要素内の出現回数は数えない
func ComputeIDF(c *Collection) (IDFTable, error) {
	if c == nil || c.Len() == 0 {
		return nil, NewInvalidInputError("cannot compute idf over an empty collection")
	}

	df := make(map[string]int)
	for _, m := range c.members {
		seen := make(map[string]struct{}, len(m.Tokens))
		for _, term := range m.Tokens {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(c.Len())
	idfs := make(IDFTable, len(df))
	for term, f := range df {
		idfs[term] = math.Log(n / float64(f))
	}
	return idfs, nil
}
