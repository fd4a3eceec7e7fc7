package questions

import (
	"maps"
	"slices"
)

// Member は Collection の要素。Key は文書名または文そのもの
type Member struct {
	Key    string
	Tokens TokenSequence
}

// Collection は追加順を保持する Key -> TokenSequence の対応。
// 追加順はランキングの同点時の順序になる
type Collection struct {
	members   []Member
	positions map[string]int
}

func NewCollection() *Collection {
	return &Collection{
		members:   make([]Member, 0),
		positions: make(map[string]int),
	}
}

// Add は要素を追加する。既存の Key の場合は位置を保ったまま語句列を置き換える
func (c *Collection) Add(key string, tokens TokenSequence) {
	if i, ok := c.positions[key]; ok {
		c.members[i].Tokens = tokens
		return
	}
	c.positions[key] = len(c.members)
	c.members = append(c.members, Member{Key: key, Tokens: tokens})
}

func (c *Collection) Get(key string) (TokenSequence, bool) {
	i, ok := c.positions[key]
	if !ok {
		return nil, false
	}
	return c.members[i].Tokens, true
}

func (c *Collection) Len() int {
	return len(c.members)
}

// Members は要素の複製を追加順で返す
func (c *Collection) Members() []Member {
	members := make([]Member, len(c.members))
	for i, m := range c.members {
		members[i] = Member{Key: m.Key, Tokens: slices.Clone(m.Tokens)}
	}
	return members
}

// Clone は独立した複製を返す
func (c *Collection) Clone() *Collection {
	clone := &Collection{
		members:   c.Members(),
		positions: maps.Clone(c.positions),
	}
	return clone
}
