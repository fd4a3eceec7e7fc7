package questions

import (
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/questions/morphology"
)

func TestMorphologicalTokenizerTokenize(t *testing.T) {
	cases := []struct {
		text     string
		expected TokenStream
	}{
		{
			text: "今日は天気が良い",
			expected: TokenStream{
				Tokens: []Token{
					{Term: "今日", Kana: "キョウ"},
					{Term: "は", Kana: "ハ"},
					{Term: "天気", Kana: "テンキ"},
					{Term: "が", Kana: "ガ"},
					{Term: "良い", Kana: "ヨイ"},
				},
			},
		},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			// Mock
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			mockMorphology := NewMockMorphology(mockCtrl)

			// Given
			tokenizer := NewMorphologicalTokenizer(mockMorphology)
			mockMorphology.EXPECT().Analyze(tt.text).Return([]morphology.MorphologyToken{
				morphology.NewMorphologyToken("今日", "キョウ"),
				morphology.NewMorphologyToken("は", "ハ"),
				morphology.NewMorphologyToken("天気", "テンキ"),
				morphology.NewMorphologyToken("が", "ガ"),
				morphology.NewMorphologyToken("良い", "ヨイ"),
			})

			// When
			actual := tokenizer.Tokenize(tt.text)

			// Then
			if diff := cmp.Diff(actual, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestStandardTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected TokenStream
	}{
		{text: "", expected: TokenStream{Tokens: []Token{}}},
		{text: "hoge fuga", expected: TokenStream{Tokens: []Token{{Term: "hoge"}, {Term: "fuga"}}}},
		{text: "  hoge,fuga!!piyo  ", expected: TokenStream{Tokens: []Token{{Term: "hoge"}, {Term: "fuga"}, {Term: "piyo"}}}},
		{text: "R2D2 and C3PO", expected: TokenStream{Tokens: []Token{{Term: "R2D2"}, {Term: "and"}, {Term: "C3PO"}}}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			if diff := cmp.Diff(NewStandardTokenizer().Tokenize(tt.text), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestProseTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
	}{
		{text: "The cat sat.", expected: []string{"The", "cat", "sat", "."}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("text = %v, expected = %v", tt.text, tt.expected), func(t *testing.T) {
			got := NewProseTokenizer().Tokenize(tt.text)
			if diff := cmp.Diff([]string(got.Terms()), tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}
