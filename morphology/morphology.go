package morphology

//go:generate mockgen -source=morphology.go -destination=../mock_morphology_test.go -package=questions

// Morphology は形態素解析器。記号や空白は結果に含めない
type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Term string
	Kana string
}

func NewMorphologyToken(term, kana string) MorphologyToken {
	return MorphologyToken{
		Term: term,
		Kana: kana,
	}
}
