package questions

import "sort"

type DocumentScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type documentScores []DocumentScore

// スコアの降順。sort.Stable と組み合わせて同点は追加順を保つ
func (ds documentScores) Len() int           { return len(ds) }
func (ds documentScores) Less(i, j int) bool { return ds[i].Score > ds[j].Score }
func (ds documentScores) Swap(i, j int)      { ds[i], ds[j] = ds[j], ds[i] }

func (ds documentScores) names(n int) []string {
	if n > len(ds) {
		n = len(ds)
	}
	if n < 0 {
		n = 0
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = ds[i].Name
	}
	return names
}

// RankDocuments は全ての文書を TF-IDF の合計で降順に並べる。
// IDF 表にない検索語句は 0 として扱う
func RankDocuments(query Query, docs *Collection, idf IDFTable) []DocumentScore {
	scores := make(documentScores, 0, docs.Len())
	for _, m := range docs.members {
		var sum float64
		for _, term := range query.Terms() {
			w, ok := idf.Lookup(term)
			if !ok {
				continue
			}
			sum += float64(m.Tokens.Count(term)) * w
		}
		scores = append(scores, DocumentScore{Name: m.Key, Score: sum})
	}
	sort.Stable(scores)
	return scores
}

// TopDocuments は上位 n 件の文書名を返す
func TopDocuments(query Query, docs *Collection, idf IDFTable, n int) []string {
	return documentScores(RankDocuments(query, docs, idf)).names(n)
}

type SentenceScore struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
	Density  float64 `json:"density"`
}

type sentenceScores []SentenceScore

// スコアの降順、同点なら検索語句の密度の降順
func (ss sentenceScores) Len() int { return len(ss) }
func (ss sentenceScores) Less(i, j int) bool {
	if ss[i].Score != ss[j].Score {
		return ss[i].Score > ss[j].Score
	}
	return ss[i].Density > ss[j].Density
}
func (ss sentenceScores) Swap(i, j int) { ss[i], ss[j] = ss[j], ss[i] }

func (ss sentenceScores) sentences(n int) []string {
	if n > len(ss) {
		n = len(ss)
	}
	if n < 0 {
		n = 0
	}
	sentences := make([]string, n)
	for i := 0; i < n; i++ {
		sentences[i] = ss[i].Sentence
	}
	return sentences
}

// RankSentences は検索語句を一つ以上含む文を IDF の合計で降順に並べる。
// 文中の出現回数は数えず、検索語句ごとに一度だけ加算する
func RankSentences(query Query, sentences *Collection, idf IDFTable) ([]SentenceScore, error) {
	scores := make(sentenceScores, 0)
	for _, m := range sentences.members {
		var sum float64
		var matched int
		for _, term := range query.Terms() {
			if !m.Tokens.Contains(term) {
				continue
			}
			w, ok := idf.Lookup(term)
			if !ok {
				return nil, NewUndefinedIDFError(term, m.Key)
			}
			sum += w
			matched++
		}
		if matched == 0 {
			continue
		}
		// 一致した文は少なくとも一つの語句を含むので分母は0にならない
		density := float64(matched) / float64(len(m.Tokens))
		scores = append(scores, SentenceScore{Sentence: m.Key, Score: sum, Density: density})
	}
	sort.Stable(scores)
	return scores, nil
}

// TopSentences は上位 n 件の文を返す。一致する文が n 未満ならその数だけ返す
func TopSentences(query Query, sentences *Collection, idf IDFTable, n int) ([]string, error) {
	ranked, err := RankSentences(query, sentences, idf)
	if err != nil {
		return nil, err
	}
	return sentenceScores(ranked).sentences(n), nil
}
