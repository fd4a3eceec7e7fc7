package questions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T, docs []Document, options ...SearcherOption) *Searcher {
	t.Helper()
	analyzer := NewEnglishAnalyzer(NewStandardTokenizer(), EnglishStopWords)
	index, err := NewIndex(docs, analyzer)
	require.NoError(t, err)
	return NewSearcher(index, analyzer, NewProseSentenceSplitter(), options...)
}

var animalDocs = []Document{
	NewDocument("cats.txt", "Cats are small carnivorous mammals. Cats like to sleep.\nA domestic cat purrs."),
	NewDocument("dogs.txt", "Dogs are loyal companions. Dogs bark at strangers."),
	NewDocument("birds.txt", "Birds can fly. Penguins are birds that cannot fly."),
}

func TestSearcher_Search(t *testing.T) {
	searcher := newTestSearcher(t, animalDocs)

	cases := []struct {
		query     string
		files     []string
		sentences []string
	}{
		{
			query:     "What do cats like to do?",
			files:     []string{"cats.txt"},
			sentences: []string{"Cats like to sleep."},
		},
		{
			query:     "Do dogs bark?",
			files:     []string{"dogs.txt"},
			sentences: []string{"Dogs bark at strangers."},
		},
		{
			query:     "Which birds cannot fly?",
			files:     []string{"birds.txt"},
			sentences: []string{"Penguins are birds that cannot fly."},
		},
		{
			// どの文書にも一致しない場合は先頭の文書が選ばれるが、文は返さない
			query:     "zebra",
			files:     []string{"cats.txt"},
			sentences: []string{},
		},
	}
	for _, tt := range cases {
		t.Run(tt.query, func(t *testing.T) {
			got, err := searcher.Search(tt.query)
			require.NoError(t, err)
			if diff := cmp.Diff(got.Files, tt.files); diff != "" {
				t.Errorf("Files Diff: (-got +want)\n%s", diff)
			}
			if diff := cmp.Diff(got.Sentences, tt.sentences); diff != "" {
				t.Errorf("Sentences Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSearcher_SearchN(t *testing.T) {
	searcher := newTestSearcher(t, animalDocs, WithFileMatches(3), WithSentenceMatches(5))

	got, err := searcher.Search("Are cats and dogs mammals?")
	require.NoError(t, err)

	assert.Equal(t, []string{"cats", "dogs", "mammals"}, got.Query)
	assert.Equal(t, []string{"cats.txt", "dogs.txt", "birds.txt"}, got.Files)
	assert.Len(t, got.FileScores, 3)
	// 一致する文だけが返る。完全な同点は抽出順
	assert.Equal(t, []string{
		"Cats are small carnivorous mammals.",
		"Cats like to sleep.",
		"Dogs are loyal companions.",
		"Dogs bark at strangers.",
	}, got.Sentences)

	got, err = searcher.SearchN("Are cats and dogs mammals?", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"cats.txt"}, got.Files)
	assert.Equal(t, []string{"Cats are small carnivorous mammals."}, got.Sentences)

	_, err = searcher.SearchN("cats", -1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearcher_NoSentences(t *testing.T) {
	searcher := newTestSearcher(t, []Document{NewDocument("empty.txt", "It is what it is.")})

	got, err := searcher.Search("anything")
	require.NoError(t, err)
	assert.Equal(t, []string{"empty.txt"}, got.Files)
	assert.Empty(t, got.Sentences)
	assert.Empty(t, got.SentenceScores)
}

func TestSearcher_LinesAreSeparatePassages(t *testing.T) {
	searcher := newTestSearcher(t, []Document{
		NewDocument("cats.txt", "Cat care\nCats sleep a lot. Cats eat fish."),
	})

	// 見出し行は次の行の文と結合されない
	got, err := searcher.SearchN("cat care", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat care"}, got.Sentences)
	require.Len(t, got.SentenceScores, 1)
	assert.InDelta(t, 1.0, got.SentenceScores[0].Density, 1e-9)
}
