package themes

import (
	"strings"
	"time"

	"devfolio_backend/internal/models"
)

// Newspaper renders an editorial front page: a masthead with a dateline
// and multi-column sections separated by rules.
func Newspaper() Theme {
	return Theme{
		Meta: Meta{
			Key:         "newspaper",
			DisplayName: "Newspaper",
			Description: "Classic editorial design with columns",
			Preview:     "/themes/newspaper.png",
			Colors: Colors{
				Primary:    "#1a1a1a",
				Secondary:  "#4a4a4a",
				Background: "#f5f5dc",
				Text:       "#1a1a1a",
				Accent:     "#8b0000",
			},
			Fonts: Fonts{Heading: "font-serif", Body: "font-serif"},
			Styles: Styles{
				Container: "bg-[#f5f5dc] text-gray-900",
				Header:    "bg-[#f5f5dc] border-b-4 border-double border-gray-900",
				Card:      "bg-[#f5f5dc] border-b border-gray-400 pb-4",
				Button:    "bg-gray-900 text-[#f5f5dc] hover:bg-gray-800 px-4 py-2",
				Heading:   "text-gray-900 font-serif font-black uppercase tracking-tight",
				Text:      "text-gray-800 font-serif leading-relaxed",
				Link:      "text-[#8b0000] hover:underline",
			},
		},
		Renderer: newspaperRenderer{},
	}
}

type newspaperRenderer struct{}

func (newspaperRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Newspaper().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "newspaper")

	// Masthead replaces the stock header: banner name plus dateline.
	masthead := El("header").Class(s.Header)
	name := profile.FullName
	if name == "" {
		name = profile.Username
	}
	masthead.Append(El("h1", Text("The "+name+" Times")).Class(s.Heading))
	masthead.Append(El("p", Text(time.Now().Format("Monday, January 2, 2006"))).Class(s.Text).Attr("data-role", "dateline"))
	if profile.Title != "" {
		masthead.Append(El("p", Text(strings.ToUpper(profile.Title))).Class(s.Text).Attr("data-role", "title"))
	}
	if profile.Bio != "" {
		masthead.Append(El("p", Text(profile.Bio)).Class(s.Text).Attr("data-role", "bio"))
	}
	if links := socialLinks(profile.SocialLinks, s); links != nil {
		masthead.Append(links)
	}
	page.Append(masthead)

	main := El("main").Class("columns")
	main.Append(standardSections(items, s, "Nothing fit to print yet.")...)
	page.Append(main)

	return page
}
