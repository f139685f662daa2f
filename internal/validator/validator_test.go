package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Title    string `json:"title" validate:"required,max=10"`
	Category string `json:"category" validate:"required,is-category"`
	FileType string `json:"fileType" validate:"omitempty,is-file-type"`
	Username string `json:"username" validate:"omitempty,is-username"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{
		Title:    "ok",
		Category: "PROJECT",
		FileType: "IMAGE",
		Username: "alice_01",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&samplePayload{Category: "PROJECT"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "title")
	assert.NotContains(t, vErr.Errors, "Title")
}

func TestCategoryRule(t *testing.T) {
	v := New()

	for _, valid := range []string{"PROJECT", "CERTIFICATE", "RESUME", "EXPERIENCE", "EDUCATION"} {
		assert.NoError(t, v.Validate(&samplePayload{Title: "t", Category: valid}), valid)
	}

	err := v.Validate(&samplePayload{Title: "t", Category: "BLOG"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors["category"], "category")
}

func TestFileTypeRule(t *testing.T) {
	v := New()

	for _, valid := range []string{"IMAGE", "PDF", "LINK", "VIDEO"} {
		assert.NoError(t, v.Validate(&samplePayload{Title: "t", Category: "PROJECT", FileType: valid}), valid)
	}
	assert.Error(t, v.Validate(&samplePayload{Title: "t", Category: "PROJECT", FileType: "GIF"}))
}

func TestUsernameRule(t *testing.T) {
	v := New()

	valid := []string{"abc", "alice_01", "a-b-c", "x2345678901234567890123456789x"}
	for _, u := range valid {
		assert.NoError(t, v.Validate(&samplePayload{Title: "t", Category: "PROJECT", Username: u}), u)
	}

	invalid := []string{"ab", "UPPER", "has space", "dot.name", "x23456789012345678901234567890xx"}
	for _, u := range invalid {
		assert.Error(t, v.Validate(&samplePayload{Title: "t", Category: "PROJECT", Username: u}), u)
	}
}
