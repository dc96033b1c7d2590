package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorySchema() *Schema {
	min := 0.01
	return &Schema{
		Rules: []Rule{
			{Path: "name.en", Required: true, Message: "English name is required", MaxLen: 100, Section: "en"},
			{Path: "name.am", Required: true, Message: "Amharic name is required", MaxLen: 300, Section: "am"},
			{Path: "description.en", MaxLen: 500, Section: "en"},
			{Path: "basePrice", Required: true, Min: &min, Section: "en"},
		},
	}
}

func guestSchema() *Schema {
	return &Schema{
		Rules: []Rule{
			{Path: "minGuests"},
			{Path: "maxGuests"},
		},
		Cross: []CrossRule{
			func(get func(string) string) (string, string) {
				minV, maxV := get("minGuests"), get("maxGuests")
				if minV != "" && maxV != "" && minV > maxV {
					return "minGuests", "Minimum guests cannot exceed maximum guests"
				}
				return "", ""
			},
		},
	}
}

func TestForm_DirtyFlag(t *testing.T) {
	f := New(categorySchema(), map[string]string{
		"name.en":   "Doro Wot",
		"name.am":   "ዶሮ ወጥ",
		"basePrice": "120",
	}, OnSubmit)

	assert.False(t, f.IsDirty())

	// A nested path changed to a different value flips dirty on
	f.Set("name.en", "Doro Wat")
	assert.True(t, f.IsDirty())

	// Restoring the initial value flips it back off
	f.Set("name.en", "Doro Wot")
	assert.False(t, f.IsDirty())

	// Equal holds for deep paths regardless of which field changed
	f.Set("name.am", "ዶሮ")
	assert.True(t, f.IsDirty())
	f.Set("name.am", "ዶሮ ወጥ")
	assert.False(t, f.IsDirty())
}

func TestForm_OnChangeValidation(t *testing.T) {
	f := New(categorySchema(), nil, OnChange)

	f.Set("name.en", "")
	assert.Equal(t, "English name is required", f.Error("name.en"))

	// Correcting the field clears its error
	f.Set("name.en", "Kitfo")
	assert.Empty(t, f.Error("name.en"))
}

func TestForm_OnSubmitValidationIsDeferred(t *testing.T) {
	f := New(categorySchema(), nil, OnSubmit)

	f.Set("name.en", "")
	assert.Empty(t, f.Error("name.en"), "errors appear only on submit attempt")

	assert.False(t, f.Validate())
	assert.Equal(t, "English name is required", f.Error("name.en"))
}

func TestForm_SubmitRefusedWhileInvalid(t *testing.T) {
	f := New(categorySchema(), nil, OnSubmit)
	f.Set("name.en", "Kitfo")
	// name.am and basePrice still missing

	called := false
	err := f.Submit(func(map[string]string) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called, "no network call while a required field is empty")
	assert.Equal(t, "am", f.FirstInvalidSection())
}

func TestForm_SubmitResetsDirtyBaseline(t *testing.T) {
	f := New(categorySchema(), map[string]string{
		"name.en":   "Kitfo",
		"name.am":   "ክትፎ",
		"basePrice": "150",
	}, OnSubmit)

	f.Set("basePrice", "175")
	require.True(t, f.IsDirty())

	require.NoError(t, f.Submit(func(values map[string]string) error {
		assert.Equal(t, "175", values["basePrice"])
		return nil
	}))
	assert.False(t, f.IsDirty(), "a successful submit adopts the new baseline")

	// A failed submit keeps the old baseline
	f.Set("basePrice", "200")
	require.Error(t, f.Submit(func(map[string]string) error {
		return errors.New("server rejected")
	}))
	assert.True(t, f.IsDirty())
}

func TestForm_NumericBounds(t *testing.T) {
	f := New(categorySchema(), nil, OnChange)

	f.Set("basePrice", "abc")
	assert.NotEmpty(t, f.Error("basePrice"))

	f.Set("basePrice", "0")
	assert.NotEmpty(t, f.Error("basePrice"))

	f.Set("basePrice", "49.99")
	assert.Empty(t, f.Error("basePrice"))
}

func TestForm_CrossFieldRule(t *testing.T) {
	f := New(guestSchema(), nil, OnSubmit)
	f.Set("minGuests", "9")
	f.Set("maxGuests", "5")

	assert.False(t, f.Validate())
	assert.Equal(t, "Minimum guests cannot exceed maximum guests", f.Error("minGuests"))

	f.Set("maxGuests", "9")
	assert.True(t, f.Validate())
}

func TestForm_CancelPromptsWhenDirty(t *testing.T) {
	f := New(categorySchema(), map[string]string{"name.en": "Kitfo"}, OnSubmit)

	assert.True(t, f.Cancel(nil), "a clean form leaves without prompting")

	f.Set("name.en", "Gored Gored")
	prompted := false
	ok := f.Cancel(func(prompt string) bool {
		prompted = true
		return false
	})
	assert.True(t, prompted)
	assert.False(t, ok, "declining the prompt keeps the form open")

	assert.True(t, f.Cancel(func(string) bool { return true }))
}

func TestForm_MaxLen(t *testing.T) {
	f := New(categorySchema(), nil, OnChange)

	long := make([]rune, 101)
	for i := range long {
		long[i] = 'a'
	}
	f.Set("name.en", string(long))
	assert.NotEmpty(t, f.Error("name.en"))

	f.Set("name.en", "fine")
	assert.Empty(t, f.Error("name.en"))
}
