package questions

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput は呼び出し側の前提(空でないコレクションなど)が満たされていない
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefinedIDF は採点対象の語句が IDF 表に存在しない
	ErrUndefinedIDF = errors.New("undefined idf")
)

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}

// UndefinedIDFError は IDF 表がスコア計算対象の文を含まないコレクションから計算されたことを示す
type UndefinedIDFError struct {
	Term     string
	Sentence string
}

func (e *UndefinedIDFError) Error() string {
	return fmt.Sprintf("no idf for term '%s' found in sentence %q", e.Term, e.Sentence)
}

func (e *UndefinedIDFError) Is(target error) bool {
	return target == ErrUndefinedIDF
}

func NewUndefinedIDFError(term, sentence string) *UndefinedIDFError {
	return &UndefinedIDFError{Term: term, Sentence: sentence}
}
