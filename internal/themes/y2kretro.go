package themes

import (
	"strings"

	"devfolio_backend/internal/models"
)

// Y2KRetro renders each section as a desktop window with title-bar
// chrome, finished with a taskbar.
func Y2KRetro() Theme {
	return Theme{
		Meta: Meta{
			Key:         "y2kretro",
			DisplayName: "Y2K Retro",
			Description: "Nostalgic Windows 95 aesthetic with pixel art vibes",
			Preview:     "/themes/y2kretro.png",
			Colors: Colors{
				Primary:    "#0000aa",
				Secondary:  "#008080",
				Background: "#008080",
				Text:       "#000000",
				Accent:     "#ff00ff",
			},
			Fonts: Fonts{Heading: "font-mono", Body: "font-mono"},
			Styles: Styles{
				Container: "bg-teal-700 text-black font-mono",
				Header:    "bg-gray-300 border-t-2 border-white border-b-2 border-b-gray-500",
				Card:      "bg-gray-200 border-2 border-gray-400 shadow-[inset_-2px_-2px_0_0_#808080,inset_2px_2px_0_0_#fff]",
				Button:    "bg-gray-300 border-2 border-gray-400 shadow-[inset_-2px_-2px_0_0_#808080,inset_2px_2px_0_0_#fff] px-4 py-1 hover:bg-gray-400 active:shadow-[inset_2px_2px_0_0_#808080,inset_-2px_-2px_0_0_#fff]",
				Heading:   "text-gray-800 font-mono font-bold",
				Text:      "text-gray-700 font-mono",
				Link:      "text-blue-800 underline hover:text-purple-800",
			},
		},
		Renderer: y2kRetroRenderer{},
	}
}

type y2kRetroRenderer struct{}

func windowChrome(title string, s Styles, content ...*Node) *Node {
	bar := El("div",
		El("span", Text(title)).Class(s.Heading),
		El("span", Text("_ [] X")).Class("window-buttons"),
	).Class("title-bar")
	return El("div", append([]*Node{bar}, content...)...).Class(s.Card).Attr("data-role", "window")
}

func (y2kRetroRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Y2KRetro().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "y2kretro")
	page.Append(windowChrome("profile.exe", s, profileHeader(profile, s)))

	sorted := SortItems(items)
	groups := GroupByCategory(sorted)

	main := El("main").Class("desktop")
	if len(sorted) == 0 {
		main.Append(windowChrome("error.exe", s, emptyState(s, "404: portfolio not found")))
	}
	for _, c := range models.Categories {
		var cards []*Node
		if len(groups[c]) == 0 {
			cards = append(cards, categoryEmpty(s, "this folder is empty"))
		}
		for i := range groups[c] {
			cards = append(cards, itemCard(&groups[c][i], s))
		}
		window := windowChrome(strings.ToLower(CategoryLabel(c))+".exe", s, cards...)
		window.Attr("data-category", string(c))
		main.Append(window)
	}
	page.Append(main)

	taskbar := El("footer", El("span", Text("Start")).Class(s.Button)).Class(s.Header).Attr("data-role", "taskbar")
	page.Append(taskbar)

	return page
}
