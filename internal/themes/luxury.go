package themes

import "devfolio_backend/internal/models"

// Luxury renders a spacious atelier layout with numbered sections.
func Luxury() Theme {
	return Theme{
		Meta: Meta{
			Key:         "luxury",
			DisplayName: "Luxury Atelier",
			Description: "Elegant serif typography with gold accents and spacious layout",
			Preview:     "/themes/luxury.png",
			Colors: Colors{
				Primary:    "#1c1917",
				Secondary:  "#b45309",
				Background: "#fafaf9",
				Text:       "#1c1917",
				Accent:     "#b45309",
			},
			Fonts: Fonts{Heading: "font-serif", Body: "font-sans"},
			Styles: Styles{
				Container: "bg-neutral-50 text-neutral-800",
				Header:    "bg-white border-b border-neutral-200",
				Card:      "bg-white border border-neutral-200 hover:border-amber-600/30 transition-all",
				Button:    "border border-neutral-400 text-neutral-800 px-8 py-3 uppercase tracking-widest text-sm hover:border-amber-600 hover:text-amber-700 transition-all",
				Heading:   "text-neutral-800 font-serif font-light tracking-wide",
				Text:      "text-neutral-600 font-light",
				Link:      "text-amber-700 hover:text-amber-900",
			},
		},
		Renderer: luxuryRenderer{},
	}
}

var romanNumerals = []string{"I", "II", "III", "IV", "V"}

type luxuryRenderer struct{}

func (luxuryRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Luxury().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "luxury")
	page.Append(profileHeader(profile, s))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	main := El("main").Class("atelier")
	if len(sorted) == 0 {
		main.Append(emptyState(s, "The collection is being curated."))
	}
	for n, c := range models.Categories {
		section := El("section").Attr("data-category", string(c))
		section.Append(El("h2",
			El("span", Text(romanNumerals[n])).Class("numeral"),
			Text(" "+CategoryLabel(c)),
		).Class(s.Heading))
		if len(groups[c]) == 0 {
			section.Append(categoryEmpty(s, "The collection is being curated."))
		}
		for i := range groups[c] {
			section.Append(itemCard(&groups[c][i], s))
		}
		main.Append(section)
	}
	page.Append(main)

	return page
}
