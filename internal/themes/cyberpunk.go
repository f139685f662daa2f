package themes

import (
	"strings"

	"devfolio_backend/internal/models"
)

// Cyberpunk renders a terminal-styled page with a sidebar of section
// shortcuts and uppercase bracketed headings.
func Cyberpunk() Theme {
	return Theme{
		Meta: Meta{
			Key:         "cyberpunk",
			DisplayName: "Cyberpunk",
			Description: "Dark futuristic design with neon accents",
			Preview:     "/themes/cyberpunk.png",
			Colors: Colors{
				Primary:    "#00ff41",
				Secondary:  "#ff00ff",
				Background: "#0a0a0a",
				Text:       "#00ff41",
				Accent:     "#00d4ff",
			},
			Fonts: Fonts{Heading: "font-mono", Body: "font-mono"},
			Styles: Styles{
				Container: "bg-gray-950 text-green-400",
				Header:    "bg-black border-b border-green-500/30",
				Card:      "bg-gray-900 border border-green-500/50 rounded-none hover:border-green-400 transition-colors shadow-lg shadow-green-500/10",
				Button:    "bg-green-500 text-black hover:bg-green-400 font-mono uppercase tracking-wider px-4 py-2",
				Heading:   "text-green-400 font-mono uppercase tracking-wider",
				Text:      "text-green-300/80",
				Link:      "text-cyan-400 hover:text-pink-500",
			},
		},
		Renderer: cyberpunkRenderer{},
	}
}

type cyberpunkRenderer struct{}

func (cyberpunkRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Cyberpunk().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "cyberpunk")
	page.Append(profileHeader(profile, s))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	// Sidebar nav with per-section counts, terminal style.
	nav := El("nav").Class("sidebar")
	for _, c := range models.Categories {
		if len(groups[c]) == 0 {
			continue
		}
		nav.Append(El("a",
			Text("> "+strings.ToUpper(CategoryLabel(c))),
			countBadge(len(groups[c])),
		).Attr("href", "#"+strings.ToLower(string(c))).Class(s.Link))
	}
	page.Append(nav)

	main := El("main")
	if len(sorted) == 0 {
		main.Append(emptyState(s, "// NO_DATA_FOUND"))
	}
	for _, c := range models.Categories {
		section := El("section").
			Attr("id", strings.ToLower(string(c))).
			Attr("data-category", string(c))
		section.Append(El("h2", Text("["+strings.ToUpper(CategoryLabel(c))+"]")).Class(s.Heading))
		if len(groups[c]) == 0 {
			section.Append(categoryEmpty(s, "// NO_DATA_FOUND"))
		}
		for i := range groups[c] {
			section.Append(itemCard(&groups[c][i], s))
		}
		main.Append(section)
	}
	page.Append(main)

	return page
}
