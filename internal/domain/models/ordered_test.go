package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedObject_KeepsInsertionOrder(t *testing.T) {
	o := NewOrderedObject().Set("z", 1).Set("a", "x<y").Set("m", true)
	o.Set("z", 2)

	raw, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":2,"a":"x<y","m":true}`, string(raw))
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	o.Delete("a")
	o.Delete("missing")
	assert.Equal(t, []string{"z", "m"}, o.Keys())
	assert.Equal(t, 2, o.Len())
}

func TestOrderedObject_RoundTripNested(t *testing.T) {
	in := `{"b":{"y":1,"x":[1,{"q":2,"p":3}]},"a":1.50,"c":null}`
	o, err := ParseOrderedObject(in)
	require.NoError(t, err)

	raw, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, in, string(raw))

	b, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, b.(*OrderedObject).Keys())

	a, _ := o.Get("a")
	assert.Equal(t, json.Number("1.50"), a)
}

func TestOrderedObject_Indent(t *testing.T) {
	o := NewOrderedObject().Set("k", "v").Set("n", NewOrderedObject().Set("i", 1))
	out, err := o.Indent()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\",\n  \"n\": {\n    \"i\": 1\n  }\n}", out)
}

func TestParseOrderedObject_Rejects(t *testing.T) {
	for _, in := range []string{`[1,2]`, `"s"`, `{"a":1} {"b":2}`, `{"a":`, ``} {
		_, err := ParseOrderedObject(in)
		assert.Error(t, err, in)
	}
}

func TestOrderedObject_GetString(t *testing.T) {
	o := NewOrderedObject().Set("s", "v").Set("n", 1)
	s, ok := o.GetString("s")
	assert.True(t, ok)
	assert.Equal(t, "v", s)
	_, ok = o.GetString("n")
	assert.False(t, ok)
	assert.True(t, o.Has("n"))
	assert.False(t, o.Has("x"))
}
