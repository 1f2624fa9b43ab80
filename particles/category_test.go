package particles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Lepton, "lepton"},
		{Baryon, "baryon"},
		{Nucleus, "nucleus"},
		{Ion, "ion"},
		{Atom, "atom"},
		{Category(0), "Category(0)"},
		{Category(6), "Category(6)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{Lepton, Baryon, Nucleus, Ion, Atom} {
		assert.True(t, c.IsValid(), "Category(%d)", int(c))
	}
	for _, c := range []Category{Category(0), Category(-1), Category(6)} {
		assert.False(t, c.IsValid(), "Category(%d)", int(c))
	}
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	for _, c := range []Category{Lepton, Baryon, Nucleus, Ion, Atom} {
		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"`+c.String()+`"`, string(data))

		var got Category
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, c, got)
	}
}

func TestCategoryMarshalInvalid(t *testing.T) {
	_, err := json.Marshal(Category(0))
	assert.Error(t, err)

	_, err = Category(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategoryUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{`"quark"`, `""`, `"Lepton"`, `3`, `null`} {
		var c Category
		assert.Error(t, json.Unmarshal([]byte(input), &c), input)
	}

	var c Category
	assert.ErrorIs(t, c.UnmarshalText([]byte("boson")), ErrInvalidCategory)
}
