package questions

import "strings"

type CharFilter interface {
	Filter(string) string
}

// TypographicMapper は全角空白や飾り引用符を ASCII に寄せる
var TypographicMapper = map[string]string{
	"‘": "'",
	"’": "'",
	"“": "\"",
	"”": "\"",
	"—": " ",
	"　": " ",
}

type MappingCharFilter struct {
	mapper map[string]string // key->valueにマッピングする
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	if len(c.mapper) == 0 {
		return s
	}
	// mapの走査順に結果が依存しないよう一度に置換する
	oldnew := make([]string, 0, len(c.mapper)*2)
	for k, v := range c.mapper {
		oldnew = append(oldnew, k, v)
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}
