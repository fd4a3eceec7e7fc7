package questions

import (
	"fmt"
	"maps"
)

// Index はコーパスの一時点のスナップショット。文書ごとの語句列と文書全体の IDF を持つ。
// 生成後は変更されないので複数の検索から同時に参照できる
type Index struct {
	documents map[string]Document
	files     *Collection
	idf       IDFTable
}

// NewIndex は全文書を一度だけ解析し、文書単位の IDF を計算する
func NewIndex(docs []Document, analyzer Analyzer) (*Index, error) {
	if len(docs) == 0 {
		return nil, NewInvalidInputError("corpus has no documents")
	}
	documents := make(map[string]Document, len(docs))
	files := NewCollection()
	for _, doc := range docs {
		documents[doc.Name] = doc
		files.Add(doc.Name, analyzer.Tokenize(doc.Body))
	}
	idf, err := ComputeIDF(files)
	if err != nil {
		return nil, fmt.Errorf("compute document idf: %w", err)
	}
	return &Index{
		documents: documents,
		files:     files,
		idf:       idf,
	}, nil
}

// NewIndexFromStorage はストレージから読み出した全文書で Index を作る
func NewIndexFromStorage(storage Storage, analyzer Analyzer) (*Index, error) {
	docs, err := storage.GetAllDocuments()
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return NewIndex(docs, analyzer)
}

func (idx *Index) Document(name string) (Document, bool) {
	doc, ok := idx.documents[name]
	return doc, ok
}

// Files は文書ごとの語句列の複製を返す
func (idx *Index) Files() *Collection {
	return idx.files.Clone()
}

// IDF は文書単位の IDF の複製を返す
func (idx *Index) IDF() IDFTable {
	return maps.Clone(idx.idf)
}

func (idx *Index) Size() int {
	return idx.files.Len()
}
