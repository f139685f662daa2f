package themes

import (
	"fmt"

	"devfolio_backend/internal/models"
)

// Colors is a theme's palette, exposed to clients for previews.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// Fonts names the heading and body font stacks.
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Styles holds the utility-class strings a theme applies to the common
// page regions. Renderers attach them to nodes; clients interpret them.
type Styles struct {
	Container string `json:"container"`
	Header    string `json:"header"`
	Card      string `json:"card"`
	Button    string `json:"button"`
	Heading   string `json:"heading"`
	Text      string `json:"text"`
	Link      string `json:"link"`
}

// Meta is a theme's self-description, served on the theme listing
// endpoint so clients can build pickers without knowing the renderers.
type Meta struct {
	Key         string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	Colors      Colors `json:"colors"`
	Fonts       Fonts  `json:"fonts"`
	Styles      Styles `json:"styles"`
}

// Profile is the public slice of an owner's account a renderer may see.
// Credentials and admin flags never reach this type.
type Profile struct {
	Username      string             `json:"username"`
	FullName      string             `json:"fullName"`
	Title         string             `json:"title"`
	Bio           string             `json:"bio"`
	AvatarURL     string             `json:"avatarUrl"`
	Location      string             `json:"location,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	SelectedTheme string             `json:"selectedTheme"`
	SocialLinks   models.SocialLinks `json:"socialLinks"`
	Skills        []string           `json:"skills"`
}

// Renderer turns a profile and its visible items into a page tree.
// Implementations must not mutate the items slice.
type Renderer interface {
	Render(profile *Profile, items []models.PortfolioItem) *Node
}

// Theme pairs metadata with its renderer.
type Theme struct {
	Meta     Meta
	Renderer Renderer
}

// Registry maps theme keys to themes. It is a plain value wired in at
// startup, not package state, so tests can build small registries and
// alternative deployments can register their own themes.
type Registry struct {
	defaultKey string
	themes     map[string]Theme
	order      []string
}

// NewRegistry creates an empty registry. Lookups for unknown keys fall
// back to defaultKey once a theme under that key is registered.
func NewRegistry(defaultKey string) *Registry {
	return &Registry{
		defaultKey: defaultKey,
		themes:     make(map[string]Theme),
	}
}

// Register adds a theme. Empty and duplicate keys are rejected so a
// mis-wired deployment fails at startup rather than serving the wrong
// renderer.
func (r *Registry) Register(t Theme) error {
	key := t.Meta.Key
	if key == "" {
		return fmt.Errorf("theme key must not be empty")
	}
	if t.Renderer == nil {
		return fmt.Errorf("theme %q has no renderer", key)
	}
	if _, exists := r.themes[key]; exists {
		return fmt.Errorf("theme %q already registered", key)
	}
	r.themes[key] = t
	r.order = append(r.order, key)
	return nil
}

// Get resolves a key to a theme, falling back to the default for
// unknown or stale keys. The lookup is total as long as the default
// theme is registered.
func (r *Registry) Get(key string) Theme {
	if t, ok := r.themes[key]; ok {
		return t
	}
	return r.themes[r.defaultKey]
}

// Has reports whether key is registered. Used to validate theme
// selection on profile updates.
func (r *Registry) Has(key string) bool {
	_, ok := r.themes[key]
	return ok
}

// DefaultKey returns the fallback theme key.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// All returns every registered theme in registration order.
func (r *Registry) All() []Theme {
	out := make([]Theme, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.themes[key])
	}
	return out
}

// DefaultRegistry builds the registry with the full built-in theme set.
// Registration failures here mean a programming error in the built-in
// set, so it panics instead of returning an error.
func DefaultRegistry() *Registry {
	r := NewRegistry("minimalist")
	for _, t := range []Theme{
		Minimalist(),
		Cyberpunk(),
		Corporate(),
		Creative(),
		Newspaper(),
		NeoBrutalism(),
		Glassmorphism(),
		Biophilic(),
		Y2KRetro(),
		Luxury(),
	} {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}
