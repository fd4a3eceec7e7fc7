package questions

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(members ...Member) *Collection {
	c := NewCollection()
	for _, m := range members {
		c.Add(m.Key, m.Tokens)
	}
	return c
}

func TestComputeIDF(t *testing.T) {
	cases := []struct {
		name       string
		collection *Collection
		expected   IDFTable
	}{
		{
			name: "two documents",
			collection: newTestCollection(
				Member{Key: "A", Tokens: TokenSequence{"the", "cat", "sat"}},
				Member{Key: "B", Tokens: TokenSequence{"the", "dog", "ran"}},
			),
			expected: IDFTable{
				"the": 0,
				"cat": math.Log(2),
				"sat": math.Log(2),
				"dog": math.Log(2),
				"ran": math.Log(2),
			},
		},
		{
			name: "repeated term counts once per member",
			collection: newTestCollection(
				Member{Key: "A", Tokens: TokenSequence{"cat", "cat", "cat", "cat", "cat"}},
				Member{Key: "B", Tokens: TokenSequence{"dog"}},
				Member{Key: "C", Tokens: TokenSequence{"dog", "cat"}},
			),
			expected: IDFTable{
				"cat": math.Log(3.0 / 2.0),
				"dog": math.Log(3.0 / 2.0),
			},
		},
		{
			name: "empty member contributes to N only",
			collection: newTestCollection(
				Member{Key: "A", Tokens: TokenSequence{"cat"}},
				Member{Key: "B", Tokens: TokenSequence{}},
			),
			expected: IDFTable{
				"cat": math.Log(2),
			},
		},
		{
			name: "all members empty",
			collection: newTestCollection(
				Member{Key: "A", Tokens: TokenSequence{}},
			),
			expected: IDFTable{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeIDF(tt.collection)
			require.NoError(t, err)
			if diff := cmp.Diff(got, tt.expected, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestComputeIDF_Bounds(t *testing.T) {
	c := newTestCollection(
		Member{Key: "1", Tokens: TokenSequence{"a", "b", "c"}},
		Member{Key: "2", Tokens: TokenSequence{"a", "b"}},
		Member{Key: "3", Tokens: TokenSequence{"a", "d", "d"}},
		Member{Key: "4", Tokens: TokenSequence{"a", "e"}},
	)
	idf, err := ComputeIDF(c)
	require.NoError(t, err)

	upper := math.Log(float64(c.Len()))
	for term, v := range idf {
		assert.GreaterOrEqual(t, v, 0.0, term)
		assert.LessOrEqual(t, v, upper, term)
	}
	// 全ての要素に含まれる語句は 0
	assert.Equal(t, 0.0, idf["a"])
	assert.Equal(t, upper, idf["e"])
}

func TestComputeIDF_EmptyCollection(t *testing.T) {
	_, err := ComputeIDF(NewCollection())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ComputeIDF(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
