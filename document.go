package questions

type DocumentID uint64

// Document はコーパスの一文書。Name が検索結果で使われる識別子
type Document struct {
	ID   DocumentID `db:"id"`
	Name string     `db:"name"`
	Body string     `db:"body"`
}

func NewDocument(name, body string) Document {
	return Document{
		Name: name,
		Body: body,
	}
}
