package themes

import "devfolio_backend/internal/models"

// Biophilic renders warm earth-toned sections separated by leaf
// dividers.
func Biophilic() Theme {
	return Theme{
		Meta: Meta{
			Key:         "biophilic",
			DisplayName: "Biophilic",
			Description: "Earth tones with natural textures and warm aesthetic",
			Preview:     "/themes/biophilic.png",
			Colors: Colors{
				Primary:    "#365314",
				Secondary:  "#a16207",
				Background: "#fef3c7",
				Text:       "#1c1917",
				Accent:     "#15803d",
			},
			Fonts: Fonts{Heading: "font-serif", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-gradient-to-b from-amber-100 via-stone-100 to-green-100 text-stone-800",
				Header:    "bg-amber-50/90 backdrop-blur-sm border-b-2 border-stone-300",
				Card:      "bg-amber-50/80 backdrop-blur-sm border-2 border-stone-300 rounded-lg shadow-md hover:shadow-xl transition-all",
				Button:    "bg-green-600 text-white px-6 py-2 rounded-lg hover:bg-green-700 transition-colors",
				Heading:   "text-stone-800 font-serif font-bold",
				Text:      "text-stone-600",
				Link:      "text-green-700 hover:text-green-900",
			},
		},
		Renderer: biophilicRenderer{},
	}
}

type biophilicRenderer struct{}

func (biophilicRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Biophilic().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "biophilic")
	page.Append(profileHeader(profile, s))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	main := El("main")
	if len(sorted) == 0 {
		main.Append(emptyState(s, "This garden has not been planted yet."))
	}
	for i, c := range models.Categories {
		if i > 0 {
			main.Append(El("hr").Class("leaf-divider"))
		}
		main.Append(categorySection(c, groups[c], s))
	}
	page.Append(main)

	return page
}
