package questions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:generate mockgen -source=storage.go -destination=mock_storage_test.go -package=questions

type Storage interface {
	GetAllDocuments() ([]Document, error) // 全てのドキュメントを名前順に返す
}

// DirectoryStorage はディレクトリ直下の .txt ファイルをコーパスとして扱う
type DirectoryStorage struct {
	Dir string
}

func NewDirectoryStorage(dir string) *DirectoryStorage {
	return &DirectoryStorage{
		Dir: dir,
	}
}

func (s *DirectoryStorage) GetAllDocuments() ([]Document, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory %s: %w", s.Dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for i, name := range names {
		body, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("read corpus file %s: %w", name, err)
		}
		doc := NewDocument(name, string(body))
		doc.ID = DocumentID(i + 1)
		docs = append(docs, doc)
	}
	return docs, nil
}
