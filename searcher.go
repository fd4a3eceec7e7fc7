package questions

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	DefaultFileMatches     = 1
	DefaultSentenceMatches = 1
)

// Searcher は文書を TF-IDF で絞り込み、その文書の文を IDF で順位付けする
type Searcher struct {
	index           *Index
	analyzer        Analyzer
	splitter        SentenceSplitter
	fileMatches     int
	sentenceMatches int
	logger          *slog.Logger
}

type SearcherOption func(*Searcher)

func WithFileMatches(n int) SearcherOption {
	return func(s *Searcher) {
		s.fileMatches = n
	}
}

func WithSentenceMatches(n int) SearcherOption {
	return func(s *Searcher) {
		s.sentenceMatches = n
	}
}

func WithLogger(logger *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		s.logger = logger
	}
}

func NewSearcher(index *Index, analyzer Analyzer, splitter SentenceSplitter, options ...SearcherOption) *Searcher {
	s := &Searcher{
		index:           index,
		analyzer:        analyzer,
		splitter:        splitter,
		fileMatches:     DefaultFileMatches,
		sentenceMatches: DefaultSentenceMatches,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

type Result struct {
	Query          []string        `json:"query"`
	FileScores     []DocumentScore `json:"file_scores"`
	Files          []string        `json:"files"`
	SentenceScores []SentenceScore `json:"sentence_scores"`
	Sentences      []string        `json:"sentences"`
}

// Search は設定された件数で検索する
func (s *Searcher) Search(text string) (*Result, error) {
	return s.SearchN(text, s.fileMatches, s.sentenceMatches)
}

// SearchN は件数を指定して検索する
// 1, 検索文字列を解析してクエリを作る
// 2, 文書単位の TF-IDF で上位 fileMatches 件の文書を選ぶ
// 3, 選んだ文書を段落・文に分割して解析する。語句を含まない文は捨てる
// 4, 文の集合だけで IDF を計算し直す
// 5, 上位 sentenceMatches 件の文を返す
func (s *Searcher) SearchN(text string, fileMatches, sentenceMatches int) (*Result, error) {
	if fileMatches < 0 || sentenceMatches < 0 {
		return nil, NewInvalidInputError(fmt.Sprintf("match counts must not be negative: files=%d sentences=%d", fileMatches, sentenceMatches))
	}
	query := ParseQuery(text, s.analyzer)

	fileScores := RankDocuments(query, s.index.files, s.index.idf)
	files := documentScores(fileScores).names(fileMatches)
	s.logger.Debug("ranked documents",
		"query", query.Terms(),
		"documents", s.index.Size(),
		"selected", files,
	)

	result := &Result{
		Query:          query.Terms(),
		FileScores:     fileScores,
		Files:          files,
		SentenceScores: []SentenceScore{},
		Sentences:      []string{},
	}

	sentences := s.extractSentences(files)
	if sentences.Len() == 0 {
		s.logger.Debug("no sentences extracted", "files", files)
		return result, nil
	}

	// 文単位の IDF は文書単位の IDF とは別に計算する
	idf, err := ComputeIDF(sentences)
	if err != nil {
		return nil, fmt.Errorf("compute sentence idf: %w", err)
	}
	ranked, err := RankSentences(query, sentences, idf)
	if err != nil {
		return nil, fmt.Errorf("rank sentences: %w", err)
	}
	result.SentenceScores = ranked
	result.Sentences = sentenceScores(ranked).sentences(sentenceMatches)
	s.logger.Debug("ranked sentences",
		"candidates", sentences.Len(),
		"matched", len(ranked),
		"selected", len(result.Sentences),
	)
	return result, nil
}

func (s *Searcher) extractSentences(files []string) *Collection {
	sentences := NewCollection()
	for _, name := range files {
		doc, ok := s.index.Document(name)
		if !ok {
			continue
		}
		for _, sentence := range splitPassages(doc.Body, s.splitter) {
			tokens := s.analyzer.Tokenize(sentence)
			if len(tokens) == 0 {
				continue
			}
			sentences.Add(sentence, tokens)
		}
	}
	return sentences
}

func (s *Searcher) Index() *Index {
	return s.index
}
