package themes

import "devfolio_backend/internal/models"

// Corporate renders a formal page with a dark header band and a contact
// footer.
func Corporate() Theme {
	return Theme{
		Meta: Meta{
			Key:         "corporate",
			DisplayName: "Corporate",
			Description: "Professional design for business profiles",
			Preview:     "/themes/corporate.png",
			Colors: Colors{
				Primary:    "#1e3a5f",
				Secondary:  "#c9a227",
				Background: "#f8fafc",
				Text:       "#1e3a5f",
				Accent:     "#c9a227",
			},
			Fonts: Fonts{Heading: "font-serif", Body: "font-serif"},
			Styles: Styles{
				Container: "bg-slate-50 text-slate-800",
				Header:    "bg-[#1e3a5f] text-white",
				Card:      "bg-white border-l-4 border-[#c9a227] shadow-md hover:shadow-lg transition-shadow",
				Button:    "bg-[#1e3a5f] text-white hover:bg-[#2a4a6f] px-6 py-2",
				Heading:   "text-[#1e3a5f] font-serif font-bold",
				Text:      "text-slate-600 font-serif",
				Link:      "text-[#c9a227] hover:text-[#1e3a5f]",
			},
		},
		Renderer: corporateRenderer{},
	}
}

type corporateRenderer struct{}

func (corporateRenderer) Render(profile *Profile, items []models.PortfolioItem) *Node {
	s := Corporate().Meta.Styles

	page := El("div").Class(s.Container).Attr("data-theme", "corporate")
	page.Append(profileHeader(profile, s))

	main := El("main")
	main.Append(standardSections(items, s, "Portfolio in preparation.")...)
	page.Append(main)

	footer := El("footer").Class(s.Header)
	if profile.Phone != "" {
		footer.Append(El("span", Text(profile.Phone)).Attr("data-role", "phone"))
	}
	if profile.SocialLinks.Email != "" {
		footer.Append(El("a", Text(profile.SocialLinks.Email)).
			Attr("href", "mailto:"+profile.SocialLinks.Email).Class(s.Link))
	}
	page.Append(footer)

	return page
}
