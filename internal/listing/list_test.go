package listing

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/palette"
)

func renderList(t *testing.T, items []Item, opts ...Option) (*goquery.Document, string) {
	t.Helper()
	var b strings.Builder
	require.NoError(t, List(items, opts...).Render(context.Background(), &b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc, b.String()
}

func TestListPreservesCountAndOrder(t *testing.T) {
	items := []Item{
		{Label: "Zeta", URL: "/z"},
		{Label: "Alpha", URL: "/a"},
		{Label: "Mu", URL: "/m"},
	}
	doc, _ := renderList(t, items)

	rows := doc.Find("ul > li")
	require.Equal(t, len(items), rows.Length())
	rows.Each(func(i int, row *goquery.Selection) {
		assert.Equal(t, strconv.Itoa(i), row.AttrOr("data-row", ""))
		assert.Equal(t, items[i].Label, row.Find(`[data-slot="label"]`).Text())
	})
}

func TestListEmpty(t *testing.T) {
	doc, html := renderList(t, nil)
	assert.Equal(t, `<ul class="list-none m-0 p-0"></ul>`, html)
	assert.Equal(t, 0, doc.Find("li").Length())
}

func TestRowWithoutIconOrImage(t *testing.T) {
	doc, _ := renderList(t, []Item{{Label: "Plain", URL: "/plain", IconColor: palette.Red}})
	assert.Equal(t, 0, doc.Find(`[data-slot="icon"]`).Length())
	assert.Equal(t, 0, doc.Find(`[data-slot="image"]`).Length())
	assert.Equal(t, 0, doc.Find("svg").Length())
}

func TestIconColorStyle(t *testing.T) {
	doc, _ := renderList(t, []Item{
		{Label: "Tinted", URL: "/t", Icon: icon.Book, IconColor: palette.Blue},
		{Label: "Default", URL: "/d", Icon: icon.Book},
	})
	slots := doc.Find(`[data-slot="icon"]`)
	require.Equal(t, 2, slots.Length())

	tinted := slots.Eq(0)
	assert.True(t, tinted.HasClass("text-blue"))
	assert.True(t, tinted.HasClass("bg-blue"))
	assert.True(t, tinted.HasClass("bg-opacity-20"))
	assert.False(t, tinted.HasClass("bg-accent"))

	plain := slots.Eq(1)
	assert.True(t, plain.HasClass("bg-accent"))
	assert.True(t, plain.HasClass("dark:bg-accent-dark"))
	assert.False(t, plain.HasClass("text-blue"))
}

func TestDescriptionSlot(t *testing.T) {
	doc, _ := renderList(t, []Item{
		{Label: "With", URL: "/w", Description: "Product analytics & more"},
		{Label: "Without", URL: "/wo"},
	})
	rows := doc.Find("li")
	desc := rows.Eq(0).Find(`[data-slot="description"]`)
	require.Equal(t, 1, desc.Length())
	assert.Equal(t, "Product analytics & more", desc.Text())
	assert.Equal(t, 0, rows.Eq(1).Find(`[data-slot="description"]`).Length())
}

func TestRowTargetIsURLVerbatim(t *testing.T) {
	urls := []string{"/docs", "/search?q=a&page=2", "https://posthog.com/blog", "#goals"}
	items := make([]Item, 0, len(urls))
	for _, u := range urls {
		items = append(items, Item{Label: u, URL: u})
	}
	doc, _ := renderList(t, items)
	doc.Find("li").Each(func(i int, row *goquery.Selection) {
		a := row.Children()
		require.Equal(t, 1, a.Length())
		assert.True(t, a.Is("a"))
		assert.Equal(t, urls[i], a.AttrOr("href", ""))
		// the whole row is inside the anchor
		assert.Equal(t, 1, a.Find(`[data-slot="label"]`).Length())
	})
}

func TestDocsAndBlogScenario(t *testing.T) {
	doc, _ := renderList(t, []Item{
		{Label: "Docs", URL: "/docs", Icon: icon.Book},
		{Label: "Blog", URL: "/blog", Image: "https://x/y.png", Badge: "New"},
	})
	rows := doc.Find("li")
	require.Equal(t, 2, rows.Length())

	docs := rows.Eq(0)
	assert.Equal(t, "Book", docs.Find(`[data-slot="icon"]`).AttrOr("data-icon", ""))
	assert.Equal(t, 1, docs.Find(`[data-slot="icon"] svg`).Length())
	assert.Equal(t, 0, docs.Find(`[data-slot="badge"]`).Length())

	blog := rows.Eq(1)
	assert.Equal(t, 0, blog.Find(`[data-slot="icon"]`).Length())
	img := blog.Find(`img[data-slot="image"]`)
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "https://x/y.png", img.AttrOr("src", ""))
	assert.True(t, img.HasClass("w-12"))
	assert.True(t, img.HasClass("h-12"))
	badge := blog.Find(`[data-slot="badge"]`)
	assert.Equal(t, "NEW", badge.Text())
	assert.True(t, badge.HasClass("ml-auto"))
}

func TestImageSuppressesIcon(t *testing.T) {
	doc, _ := renderList(t, []Item{{Label: "Both", URL: "/b", Icon: icon.Book, Image: "/img.png"}})
	assert.Equal(t, 1, doc.Find(`[data-slot="image"]`).Length())
	assert.Equal(t, 0, doc.Find(`[data-slot="icon"]`).Length())
}

func TestUnknownIconRendersNothing(t *testing.T) {
	doc, _ := renderList(t, []Item{{Label: "Ghost", URL: "/ghost", Icon: icon.Name("NonexistentIcon")}})
	rows := doc.Find("li")
	require.Equal(t, 1, rows.Length())
	assert.Equal(t, 0, rows.Find(`[data-slot="icon"]`).Length())
	assert.Equal(t, "Ghost", rows.Find(`[data-slot="label"]`).Text())
}

func TestRowInteractionClasses(t *testing.T) {
	doc, _ := renderList(t, []Item{{Label: "Lift", URL: "/lift"}})
	a := doc.Find("li > a")
	assert.True(t, a.HasClass("hover:translate-y-[-1px]"))
	assert.True(t, a.HasClass("active:translate-y-[1px]"))
}

func TestLabelIsEscapedAndRichLabelRendered(t *testing.T) {
	_, html := renderList(t, []Item{
		{Label: "<b>Docs</b>", URL: "/docs"},
		{Label: "ignored", RichLabel: templ.Raw("<em>Rich</em>"), URL: "/rich"},
	})
	assert.Contains(t, html, "&lt;b&gt;Docs&lt;/b&gt;")
	assert.Contains(t, html, "<em>Rich</em>")
	assert.NotContains(t, html, "ignored")
}

func TestWithClassMergesQualifier(t *testing.T) {
	doc, _ := renderList(t, []Item{{Label: "x", URL: "/x"}}, WithClass("p-4 grid"))
	ul := doc.Find("ul")
	assert.True(t, ul.HasClass("list-none"))
	assert.True(t, ul.HasClass("p-4"))
	assert.True(t, ul.HasClass("grid"))
	assert.False(t, ul.HasClass("p-0"))
}

func TestRenderDoesNotMutateItems(t *testing.T) {
	items := []Item{
		{Label: "Docs", URL: "/docs", Icon: icon.Book, IconColor: palette.Red, Badge: "new", Description: "d"},
	}
	before := append([]Item(nil), items...)
	renderList(t, items)
	assert.Equal(t, before, items)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Item{Label: "a", URL: "/a"}.Validate())
	assert.NoError(t, Item{RichLabel: templ.Raw("a"), URL: "/a"}.Validate())
	assert.ErrorIs(t, Item{URL: "/a"}.Validate(), ErrMissingLabel)
	assert.ErrorIs(t, Item{Label: "a"}.Validate(), ErrMissingURL)
}

func TestValidateURLScheme(t *testing.T) {
	for _, u := range []string{"/docs", "#goals", "posts/", "https://posthog.com", "http://x.y/z", "mailto:hey@posthog.com"} {
		assert.NoError(t, Item{Label: "ok", URL: u}.Validate(), u)
	}
	for _, u := range []string{"javascript:alert(1)", "JavaScript:alert(1)", "data:text/html,hi", "vbscript:x", "java\tscript:alert(1)"} {
		assert.ErrorIs(t, Item{Label: "bad", URL: u}.Validate(), ErrUnsafeURL, u)
	}
}

func TestRowID(t *testing.T) {
	doc, _ := renderList(t, []Item{
		{ID: "ada-lovelace-engineer", Label: "Ada", URL: "/a"},
		{Label: "Anon", URL: "/b"},
	})
	rows := doc.Find("li")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "ada-lovelace-engineer", rows.Eq(0).AttrOr("id", ""))
	assert.Equal(t, "0", rows.Eq(0).AttrOr("data-row", ""))
	_, hasID := rows.Eq(1).Attr("id")
	assert.False(t, hasID)
}
