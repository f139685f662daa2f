package themes

import "devfolio_backend/internal/models"

// Creative renders a playful gradient page that leads with projects
// before the remaining sections.
func Creative() Theme {
	return Theme{
		Meta: Meta{
			Key:         "creative",
			DisplayName: "Creative",
			Description: "Colorful, playful design for artists",
			Preview:     "/themes/creative.png",
			Colors: Colors{
				Primary:    "#8b5cf6",
				Secondary:  "#ec4899",
				Background: "#faf5ff",
				Text:       "#581c87",
				Accent:     "#f97316",
			},
			Fonts: Fonts{Heading: "font-sans", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-gradient-to-br from-purple-50 via-pink-50 to-orange-50 text-purple-900",
				Header:    "bg-white/80 backdrop-blur-md border-b border-purple-200",
				Card:      "bg-white/90 backdrop-blur rounded-3xl shadow-xl shadow-purple-500/10 hover:shadow-2xl hover:scale-[1.02] transition-all",
				Button:    "bg-gradient-to-r from-purple-500 to-pink-500 text-white hover:from-purple-600 hover:to-pink-600 rounded-full px-6 py-2",
				Heading:   "text-purple-800 font-bold",
				Text:      "text-purple-700/80",
				Link:      "text-pink-500 hover:text-orange-500",
			},
		},
		Renderer: creativeRenderer{},
	}
}

type creativeRenderer struct{}

func (creativeRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Creative().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "creative")
	page.Append(profileHeader(profile, s))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	main := El("main")
	if len(sorted) == 0 {
		main.Append(emptyState(s, "The canvas is still blank."))
	}

	// Projects get a hero grid up top; everything else follows in
	// display order.
	hero := El("section").Class("hero-grid").Attr("data-category", string(models.CategoryProject))
	hero.Append(El("h2", Text(CategoryLabel(models.CategoryProject))).Class(s.Heading))
	projects := groups[models.CategoryProject]
	if len(projects) == 0 {
		hero.Append(categoryEmpty(s, "The canvas is still blank."))
	}
	for i := range projects {
		hero.Append(itemCard(&projects[i], s))
	}
	main.Append(hero)

	for _, c := range models.Categories {
		if c == models.CategoryProject {
			continue
		}
		main.Append(categorySection(c, groups[c], s))
	}
	page.Append(main)

	return page
}
