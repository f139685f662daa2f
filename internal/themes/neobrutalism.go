package themes

import (
	"strings"

	"devfolio_backend/internal/models"
)

// NeoBrutalism renders an aggressively flat page with shouting headings
// and thick-bordered cards.
func NeoBrutalism() Theme {
	return Theme{
		Meta: Meta{
			Key:         "neobrutalism",
			DisplayName: "Neo-Brutalism",
			Description: "Raw, bold design with high contrast and thick borders",
			Preview:     "/themes/neobrutalism.png",
			Colors: Colors{
				Primary:    "#000000",
				Secondary:  "#ff6b6b",
				Background: "#ffffff",
				Text:       "#000000",
				Accent:     "#ffd93d",
			},
			Fonts: Fonts{Heading: "font-sans", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-white text-black",
				Header:    "bg-black text-white",
				Card:      "bg-yellow-400 border-4 border-black shadow-[8px_8px_0_0_#000] hover:translate-x-1 hover:-translate-y-1 hover:shadow-[12px_12px_0_0_#000] transition-all",
				Button:    "bg-black text-white border-4 border-black font-black uppercase px-6 py-2 hover:bg-white hover:text-black transition-colors",
				Heading:   "text-black font-black uppercase",
				Text:      "text-black font-bold",
				Link:      "text-blue-600 font-bold underline hover:text-pink-600",
			},
		},
		Renderer: neoBrutalismRenderer{},
	}
}

type neoBrutalismRenderer struct{}

func (neoBrutalismRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := NeoBrutalism().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "neobrutalism")
	page.Append(profileHeader(profile, s))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	main := El("main")
	if len(sorted) == 0 {
		main.Append(emptyState(s, "NOTHING HERE. YET."))
	}
	for _, c := range models.Categories {
		section := El("section").Attr("data-category", string(c))
		section.Append(El("h2", Text(strings.ToUpper(CategoryLabel(c))+"!")).Class(s.Heading))
		if len(groups[c]) == 0 {
			section.Append(categoryEmpty(s, "NOTHING HERE. YET."))
		}
		for i := range groups[c] {
			section.Append(itemCard(&groups[c][i], s))
		}
		main.Append(section)
	}
	page.Append(main)

	return page
}
