package themes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio_backend/internal/models"
)

func itemAt(title string, order int, created time.Time) models.PortfolioItem {
	item := models.PortfolioItem{
		Title:      title,
		Category:   models.CategoryProject,
		OrderIndex: order,
	}
	item.CreatedAt = created
	return item
}

func TestSortItemsOrderThenNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.PortfolioItem{
		itemAt("old-tied", 1, base),
		itemAt("first", 0, base),
		itemAt("new-tied", 1, base.Add(time.Hour)),
	}

	sorted := SortItems(items)
	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].Title)
	assert.Equal(t, "new-tied", sorted[1].Title)
	assert.Equal(t, "old-tied", sorted[2].Title)
}

func TestSortItemsDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.PortfolioItem{
		itemAt("b", 1, base),
		itemAt("a", 0, base),
	}

	_ = SortItems(items)
	assert.Equal(t, "b", items[0].Title)
	assert.Equal(t, "a", items[1].Title)
}

func TestGroupByCategoryKeepsOrderWithinBuckets(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := SortItems([]models.PortfolioItem{
		itemAt("p2", 1, base),
		itemAt("p1", 0, base),
		{Title: "cert", Category: models.CategoryCertificate},
	})

	groups := GroupByCategory(items)
	require.Len(t, groups[models.CategoryProject], 2)
	assert.Equal(t, "p1", groups[models.CategoryProject][0].Title)
	assert.Equal(t, "p2", groups[models.CategoryProject][1].Title)
	assert.Len(t, groups[models.CategoryCertificate], 1)
	assert.Empty(t, groups[models.CategoryResume])
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", FormatDateRange(nil, nil))
	assert.Equal(t, "Mar 2023 - Present", FormatDateRange(&start, nil))
	assert.Equal(t, "Mar 2023 - Nov 2024", FormatDateRange(&start, &end))
	assert.Equal(t, "Nov 2024", FormatDateRange(nil, &end))
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Projects", CategoryLabel(models.CategoryProject))
	assert.Equal(t, "Experience", CategoryLabel(models.CategoryExperience))
	assert.Equal(t, "UNKNOWN", CategoryLabel(models.Category("UNKNOWN")))
}

func TestNodeHTMLEscapesContent(t *testing.T) {
	n := El("div",
		El("p", Text("<script>alert(1)</script>")),
	).Class(`x" onload="evil`)

	html := n.HTML()
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&#34;")
}

func TestNodeHTMLVoidElements(t *testing.T) {
	n := El("div", El("img").Attr("src", "/a.png"), El("hr"))
	html := n.HTML()
	assert.Contains(t, html, `<img src="/a.png">`)
	assert.NotContains(t, html, "</img>")
	assert.Contains(t, html, "<hr>")
}
