package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("name", "France")
	obj.Set("id", "FRA")
	obj.Set("medals", json.Number("12"))
	obj.Set("name", "République française")

	assert.Equal(t, []string{"name", "id", "medals"}, obj.Keys())
	assert.Equal(t, 3, obj.Len())

	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, "République française", v)
}

func TestObjectMarshalJSON(t *testing.T) {
	t.Parallel()

	nested := NewObject()
	nested.Set("gold", json.Number("1.0"))
	nested.Set("bronze", json.Number("3"))

	obj := NewObject()
	obj.Set("zeta", "Trinidad & Tobago <TTO>")
	obj.Set("alpha", []any{nested, nil, true})
	obj.Set("côte", "d'Ivoire")

	data, err := json.Marshal(obj)
	require.NoError(t, err)

	// json.Marshal re-escapes HTML in Marshaler output, so compare the raw method result.
	raw, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"zeta":"Trinidad & Tobago <TTO>","alpha":[{"gold":1.0,"bronze":3},null,true],"côte":"d'Ivoire"}`,
		string(raw))
	assert.True(t, json.Valid(data))
}

func TestObjectClone(t *testing.T) {
	t.Parallel()

	obj := NewObject()
	obj.Set("id", "FRA")

	clone := obj.Clone()
	clone.Set("region", "Europe")

	assert.Equal(t, []string{"id"}, obj.Keys())
	assert.Equal(t, []string{"id", "region"}, clone.Keys())
}

func TestZeroObject(t *testing.T) {
	t.Parallel()

	var obj Object
	assert.Zero(t, obj.Len())
	assert.Empty(t, obj.Keys())

	_, ok := obj.Get("id")
	assert.False(t, ok)

	raw, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))

	obj.Set("id", "USA")
	assert.Equal(t, "USA", RecordID(&obj))
}

func TestRecordID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		set   bool
		want  string
	}{
		{name: "string", value: "FRA", set: true, want: "FRA"},
		{name: "missing", want: ""},
		{name: "number", value: json.Number("5"), set: true, want: ""},
		{name: "null", value: nil, set: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewObject()
			if tt.set {
				obj.Set(FieldID, tt.value)
			}
			assert.Equal(t, tt.want, RecordID(obj))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	top := &StructuralError{Index: -1, Err: ErrNotRecordList}
	assert.Equal(t, "dataset is not a list of dictionaries", top.Error())
	assert.ErrorIs(t, top, ErrNotRecordList)

	elem := &StructuralError{Index: 1, Err: ErrNonRecordElement}
	assert.Equal(t, "dataset contains non-dictionary elements (element 1)", elem.Error())
	assert.ErrorIs(t, elem, ErrNonRecordElement)

	parse := &ParseError{Path: "dataset.json", Err: assert.AnError}
	assert.Contains(t, parse.Error(), "input file dataset.json is not valid JSON")
	assert.ErrorIs(t, parse, assert.AnError)
}
