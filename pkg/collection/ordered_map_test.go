package collection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 10, 2}, m.Values())

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, []string{"c", "b"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMapZeroValue(t *testing.T) {
	var m OrderedMap[string]
	_, ok := m.Get("x")
	assert.False(t, ok)
	m.Set("x", "y")
	assert.True(t, m.Has("x"))

	var nilMap *OrderedMap[string]
	assert.Equal(t, 0, nilMap.Len())
	assert.Empty(t, nilMap.Keys())
}

func TestOrderedMapCloneIsIndependent(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("a", 1)
	clone := m.Clone()
	clone.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestOrderedMapJSON(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("z", 26)
	m.Set("a", 1)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":26,"a":1}`, string(raw))

	decoded := NewOrderedMap[int]()
	require.NoError(t, json.Unmarshal([]byte(`{"q":1,"b":2,"m":3}`), decoded))
	assert.Equal(t, []string{"q", "b", "m"}, decoded.Keys())

	require.NoError(t, json.Unmarshal([]byte(`null`), decoded))
	assert.Equal(t, 0, decoded.Len())

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), decoded))
}
