package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-course-advisor-backend/internal/domain"
)

func TestInterestsInputUnmarshal(t *testing.T) {
	t.Run("String input stays free text", func(t *testing.T) {
		var raw domain.RawProfileInput
		require.NoError(t, json.Unmarshal([]byte(`{"interests": "math and music"}`), &raw))

		assert.False(t, raw.Interests.IsList)
		assert.Equal(t, "math and music", raw.Interests.FreeText)
	})

	t.Run("Array input becomes a list", func(t *testing.T) {
		var raw domain.RawProfileInput
		require.NoError(t, json.Unmarshal([]byte(`{"interests": ["AI/ML", "Web Dev"]}`), &raw))

		assert.True(t, raw.Interests.IsList)
		assert.Equal(t, []string{"AI/ML", "Web Dev"}, raw.Interests.List)
	})

	t.Run("Non-string array elements are coerced to their JSON text", func(t *testing.T) {
		var raw domain.RawProfileInput
		require.NoError(t, json.Unmarshal([]byte(`{"interests": ["music", 42]}`), &raw))

		assert.Equal(t, []string{"music", "42"}, raw.Interests.List)
	})

	t.Run("Unrecognized shapes degrade to empty, not an error", func(t *testing.T) {
		var raw domain.RawProfileInput
		require.NoError(t, json.Unmarshal([]byte(`{"interests": {"oops": true}}`), &raw))

		assert.False(t, raw.Interests.IsList)
		assert.Empty(t, raw.Interests.FreeText)
		assert.Empty(t, raw.Interests.List)
	})
}

func TestInterestsInputMarshalRoundTrip(t *testing.T) {
	list := domain.InterestsInput{IsList: true, List: []string{"art", "music"}}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["art", "music"]`, string(data))

	text := domain.InterestsInput{FreeText: "history"}
	data, err = json.Marshal(text)
	require.NoError(t, err)
	assert.JSONEq(t, `"history"`, string(data))
}

func TestRawProfileInputIsEmpty(t *testing.T) {
	assert.True(t, domain.RawProfileInput{}.IsEmpty())
	assert.True(t, domain.RawProfileInput{CourseCount: 5}.IsEmpty())
	assert.False(t, domain.RawProfileInput{EducationLevel: "freshman"}.IsEmpty())
	assert.False(t, domain.RawProfileInput{Interests: domain.InterestsInput{FreeText: "art"}}.IsEmpty())
	assert.False(t, domain.RawProfileInput{Interests: domain.InterestsInput{IsList: true, List: []string{"art"}}}.IsEmpty())
}
