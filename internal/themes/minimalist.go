package themes

import "devfolio_backend/internal/models"

// Minimalist is the default theme: a single clean column with category
// sections in display order.
func Minimalist() Theme {
	return Theme{
		Meta: Meta{
			Key:         "minimalist",
			DisplayName: "Minimalist",
			Description: "Clean, modern design with focus on content",
			Preview:     "/themes/minimalist.png",
			Colors: Colors{
				Primary:    "#111827",
				Secondary:  "#6b7280",
				Background: "#ffffff",
				Text:       "#111827",
				Accent:     "#3b82f6",
			},
			Fonts: Fonts{Heading: "font-sans", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-white text-gray-900",
				Header:    "bg-white border-b border-gray-200",
				Card:      "bg-white border border-gray-200 rounded-lg shadow-sm hover:shadow-md transition-shadow",
				Button:    "bg-gray-900 text-white hover:bg-gray-800 rounded-md px-4 py-2",
				Heading:   "text-gray-900 font-semibold",
				Text:      "text-gray-600",
				Link:      "text-blue-600 hover:text-blue-800",
			},
		},
		Renderer: minimalistRenderer{},
	}
}

type minimalistRenderer struct{}

func (minimalistRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Minimalist().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "minimalist")
	page.Append(profileHeader(profile, s))

	main := El("main")
	main.Append(standardSections(items, s, "No portfolio items yet.")...)
	page.Append(main)

	return page
}
