package questions

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/ikawaha/kagome/v2/filter"
	"github.com/jdkato/prose/v2"
)

// SentenceSplitter は段落を文の列に分割する
type SentenceSplitter interface {
	Split(string) []string
}

type ProseSentenceSplitter struct{}

func NewProseSentenceSplitter() ProseSentenceSplitter {
	return ProseSentenceSplitter{}
}

func (s ProseSentenceSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return []string{strings.TrimSpace(text)}
	}
	pSentences := doc.Sentences()
	sentences := make([]string, 0, len(pSentences))
	for _, ps := range pSentences {
		if t := strings.TrimSpace(ps.Text); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

// JapaneseSentenceSplitter は句点・感嘆符・疑問符で分割する。
// 直後の閉じ括弧は同じ文に含める。文中の空白は除かれる
type JapaneseSentenceSplitter struct {
	splitter filter.SentenceSplitter
}

func NewJapaneseSentenceSplitter() JapaneseSentenceSplitter {
	return JapaneseSentenceSplitter{
		splitter: filter.SentenceSplitter{
			Delim:          []rune{'。', '．', '！', '!', '？', '?'},
			Follower:       []rune{'.', '｣', '」', '』', ')', '）', '｝', '}', '〉', '》'},
			SkipWhiteSpace: true,
			// kagome の既定値 128 だと長い文が途中で切れる
			MaxRuneLen: 4096,
		},
	}
}

func (s JapaneseSentenceSplitter) Split(text string) []string {
	sentences := make([]string, 0)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, len(text)+utf8.UTFMax), len(text)+utf8.UTFMax)
	scanner.Split(s.splitter.ScanSentences)
	for scanner.Scan() {
		if t := strings.TrimSpace(scanner.Text()); t != "" {
			sentences = append(sentences, t)
		}
	}
	return sentences
}

// splitPassages は本文を改行で段落に分け、各段落を文に分割する
func splitPassages(body string, splitter SentenceSplitter) []string {
	sentences := make([]string, 0)
	for _, passage := range strings.Split(body, "\n") {
		sentences = append(sentences, splitter.Split(passage)...)
	}
	return sentences
}
