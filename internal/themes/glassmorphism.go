package themes

import "devfolio_backend/internal/models"

// Glassmorphism renders frosted panels floating over a gradient
// backdrop.
func Glassmorphism() Theme {
	return Theme{
		Meta: Meta{
			Key:         "glassmorphism",
			DisplayName: "Glassmorphism",
			Description: "Frosted glass effect with pastel gradients and 3D floating elements",
			Preview:     "/themes/glassmorphism.png",
			Colors: Colors{
				Primary:    "#a855f7",
				Secondary:  "#ec4899",
				Background: "#1e1b4b",
				Text:       "#ffffff",
				Accent:     "#06b6d4",
			},
			Fonts: Fonts{Heading: "font-sans", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-gradient-to-br from-purple-900 via-indigo-900 to-slate-900 text-white",
				Header:    "bg-white/10 backdrop-blur-xl border-b border-white/10",
				Card:      "bg-white/10 backdrop-blur-xl rounded-3xl border border-white/20 hover:bg-white/20 transition-all",
				Button:    "bg-white/20 backdrop-blur-md border border-white/30 text-white rounded-full px-6 py-2 hover:bg-white/30 transition-all",
				Heading:   "text-white font-bold",
				Text:      "text-white/80",
				Link:      "text-purple-400 hover:text-pink-400",
			},
		},
		Renderer: glassmorphismRenderer{},
	}
}

type glassmorphismRenderer struct{}

func (glassmorphismRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Glassmorphism().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "glassmorphism")
	// Decorative blurred orbs behind the content layer.
	page.Append(El("div").Class("backdrop-orbs").Attr("aria-hidden", "true"))
	page.Append(profileHeader(profile, s))

	main := El("main").Class("glass-stack")
	main.Append(standardSections(items, s, "Nothing behind the glass yet.")...)
	page.Append(main)

	return page
}
