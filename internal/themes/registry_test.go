package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio_backend/internal/models"
)

type stubRenderer struct{}

func (stubRenderer) Render(p *Profile, items []models.PortfolioItem) *Node {
	return El("div")
}

func stubTheme(key string) Theme {
	return Theme{Meta: Meta{Key: key}, Renderer: stubRenderer{}}
}

func TestRegistryRejectsDuplicateKeys(t *testing.T) {
	r := NewRegistry("base")
	require.NoError(t, r.Register(stubTheme("base")))

	err := r.Register(stubTheme("base"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryRejectsEmptyKeyAndNilRenderer(t *testing.T) {
	r := NewRegistry("base")
	assert.Error(t, r.Register(Theme{Meta: Meta{Key: ""}, Renderer: stubRenderer{}}))
	assert.Error(t, r.Register(Theme{Meta: Meta{Key: "no-renderer"}}))
}

func TestRegistryGetFallsBackToDefault(t *testing.T) {
	r := NewRegistry("base")
	require.NoError(t, r.Register(stubTheme("base")))
	require.NoError(t, r.Register(stubTheme("other")))

	assert.Equal(t, "other", r.Get("other").Meta.Key)
	assert.Equal(t, "base", r.Get("does-not-exist").Meta.Key)
	assert.Equal(t, "base", r.Get("").Meta.Key)
}

func TestRegistryAllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry("a")
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(stubTheme(key)))
	}

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Meta.Key)
	assert.Equal(t, "b", all[1].Meta.Key)
	assert.Equal(t, "c", all[2].Meta.Key)
}

func TestDefaultRegistryCarriesTenThemes(t *testing.T) {
	r := DefaultRegistry()

	all := r.All()
	assert.Len(t, all, 10)
	assert.Equal(t, "minimalist", r.DefaultKey())
	assert.True(t, r.Has("cyberpunk"))
	assert.True(t, r.Has("y2kretro"))
	assert.False(t, r.Has("vaporwave"))

	for _, theme := range all {
		assert.NotEmpty(t, theme.Meta.DisplayName, theme.Meta.Key)
		assert.NotEmpty(t, theme.Meta.Description, theme.Meta.Key)
		assert.NotEmpty(t, theme.Meta.Colors.Background, theme.Meta.Key)
		assert.NotEmpty(t, theme.Meta.Styles.Container, theme.Meta.Key)
		assert.NotNil(t, theme.Renderer, theme.Meta.Key)
	}
}
