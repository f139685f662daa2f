package themes

import (
	"fmt"
	"sort"
	"time"

	"devfolio_backend/internal/models"
)

// categoryLabels are the human headings for each item category.
var categoryLabels = map[models.Category]string{
	models.CategoryProject:     "Projects",
	models.CategoryCertificate: "Certificates",
	models.CategoryResume:      "Resume",
	models.CategoryExperience:  "Experience",
	models.CategoryEducation:   "Education",
}

// CategoryLabel returns the display heading for a category.
func CategoryLabel(c models.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// SortItems returns a sorted copy: explicit order first, then newest
// creation time as the tiebreaker. The input slice is never touched, so
// every renderer sees the same sequence no matter how many ran before it.
func SortItems(items []models.PortfolioItem) []models.PortfolioItem {
	sorted := make([]models.PortfolioItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OrderIndex != sorted[j].OrderIndex {
			return sorted[i].OrderIndex < sorted[j].OrderIndex
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// GroupByCategory buckets items by category, preserving slice order
// within each bucket.
func GroupByCategory(items []models.PortfolioItem) map[models.Category][]models.PortfolioItem {
	groups := make(map[models.Category][]models.PortfolioItem)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// FormatDateRange renders an item's time span. A missing end date reads
// as an ongoing engagement; a missing start date yields the end alone.
func FormatDateRange(start, end *time.Time) string {
	const layout = "Jan 2006"
	switch {
	case start == nil && end == nil:
		return ""
	case start == nil:
		return end.Format(layout)
	case end == nil:
		return start.Format(layout) + " - Present"
	default:
		return start.Format(layout) + " - " + end.Format(layout)
	}
}

// profileHeader builds the shared page header: identity, bio, contact
// details, social links and skills.
func profileHeader(p *Profile, s Styles) *Node {
	header := El("header").Class(s.Header)

	if p.AvatarURL != "" {
		header.Append(El("img").Attr("src", p.AvatarURL).Attr("alt", p.FullName).Class("avatar"))
	}

	name := p.FullName
	if name == "" {
		name = p.Username
	}
	header.Append(El("h1", Text(name)).Class(s.Heading))

	if p.Title != "" {
		header.Append(El("p", Text(p.Title)).Class(s.Text).Attr("data-role", "title"))
	}
	if p.Bio != "" {
		header.Append(El("p", Text(p.Bio)).Class(s.Text).Attr("data-role", "bio"))
	}
	if p.Location != "" {
		header.Append(El("span", Text(p.Location)).Class(s.Text).Attr("data-role", "location"))
	}

	if links := socialLinks(p.SocialLinks, s); links != nil {
		header.Append(links)
	}
	if skills := skillList(p.Skills, s); skills != nil {
		header.Append(skills)
	}
	return header
}

func socialLinks(links models.SocialLinks, s Styles) *Node {
	entries := []struct {
		name string
		url  string
	}{
		{"github", links.GitHub},
		{"linkedin", links.LinkedIn},
		{"email", links.Email},
		{"instagram", links.Instagram},
		{"website", links.Website},
	}

	nav := El("nav").Class("social-links")
	found := false
	for _, e := range entries {
		if e.url == "" {
			continue
		}
		found = true
		href := e.url
		if e.name == "email" {
			href = "mailto:" + e.url
		}
		nav.Append(El("a", Text(e.name)).Attr("href", href).Attr("rel", "noopener").Class(s.Link))
	}
	if !found {
		return nil
	}
	return nav
}

func skillList(skills []string, s Styles) *Node {
	if len(skills) == 0 {
		return nil
	}
	ul := El("ul").Class("skills")
	for _, skill := range skills {
		ul.Append(El("li", Text(skill)).Class(s.Text))
	}
	return ul
}

// itemCard builds the shared card for one portfolio item.
func itemCard(item *models.PortfolioItem, s Styles) *Node {
	card := El("article").Class(s.Card).Attr("data-category", string(item.Category))
	card.Append(El("h3", Text(item.Title)).Class(s.Heading))

	if dates := FormatDateRange(item.StartDate, item.EndDate); dates != "" {
		card.Append(El("time", Text(dates)).Class(s.Text))
	}
	if item.Description != "" {
		card.Append(El("p", Text(item.Description)).Class(s.Text))
	}
	if len(item.Descriptions) > 0 {
		ul := El("ul").Class("highlights")
		for _, line := range item.Descriptions {
			ul.Append(El("li", Text(line)).Class(s.Text))
		}
		card.Append(ul)
	}
	if len(item.TechStack) > 0 {
		ul := El("ul").Class("tech-stack")
		for _, tech := range item.TechStack {
			ul.Append(El("li", Text(tech)).Class(s.Text))
		}
		card.Append(ul)
	}
	for _, a := range item.Attachments {
		card.Append(attachmentNode(a, s))
	}
	return card
}

// attachmentNode renders one attachment. Images embed inline; documents,
// links and videos become outbound anchors.
func attachmentNode(a models.Attachment, s Styles) *Node {
	label := a.Label
	switch a.FileType {
	case models.FileTypeImage:
		if label == "" {
			label = "Image"
		}
		return El("img").Attr("src", a.URL).Attr("alt", label).Class("attachment")
	case models.FileTypePDF:
		if label == "" {
			label = "Open PDF"
		}
	case models.FileTypeVideo:
		if label == "" {
			label = "Watch video"
		}
	default:
		if label == "" {
			label = "Open link"
		}
	}
	return El("a", Text(label)).
		Attr("href", a.URL).
		Attr("rel", "noopener").
		Attr("data-filetype", string(a.FileType)).
		Class(s.Link)
}

// categorySection builds one labeled section of cards. A category with
// no items still gets its section, holding an empty-state placeholder,
// so every heading a visitor can navigate to exists on the page.
func categorySection(c models.Category, items []models.PortfolioItem, s Styles) *Node {
	section := El("section").Attr("data-category", string(c))
	section.Append(El("h2", Text(CategoryLabel(c))).Class(s.Heading))
	if len(items) == 0 {
		section.Append(categoryEmpty(s, ""))
		return section
	}
	for i := range items {
		section.Append(itemCard(&items[i], s))
	}
	return section
}

// categoryEmpty is the placeholder shown inside a section whose
// category has no items.
func categoryEmpty(s Styles, message string) *Node {
	if message == "" {
		message = "No items to display yet."
	}
	return El("p", Text(message)).Class("empty-state")
}

// emptyState is the shared placeholder for a portfolio with no visible
// items. Every theme shows one so an empty page never renders blank.
func emptyState(s Styles, message string) *Node {
	if message == "" {
		message = "Nothing here yet."
	}
	return El("section",
		El("p", Text(message)).Class(s.Text),
	).Class("empty-state")
}

// standardSections renders every category in display order, empty ones
// included. When no item survived filtering at all, the theme's own
// empty-state message leads the sections.
func standardSections(items []models.PortfolioItem, s Styles, emptyMessage string) []*Node {
	groups := GroupByCategory(SortItems(items))
	var sections []*Node
	if len(items) == 0 {
		sections = append(sections, emptyState(s, emptyMessage))
	}
	for _, c := range models.Categories {
		sections = append(sections, categorySection(c, groups[c], s))
	}
	return sections
}

// countBadge renders "N items" style counters used by sidebar themes.
func countBadge(n int) *Node {
	return El("span", Text(fmt.Sprintf("%d", n))).Class("count")
}
