package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bitlatte/teamsite/internal/model"
)

func TestPermalink(t *testing.T) {
	assert.Equal(t, "/posts/hello-world/", permalink("posts/hello-world.md"))
	assert.Equal(t, "/about/", permalink("about.md"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "page", contentType("about.md", ""))
	assert.Equal(t, "posts", contentType("posts/2024/hello.md", ""))
	assert.Equal(t, "project", contentType("posts/hello.md", "project"))
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "Small Teams Faq", titleFromFilename("small-teams_faq.md"))
}

func TestSortByDateUndatedLast(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}
	items := []*model.ContentItem{
		{Title: "undated-a"},
		{Title: "old", Date: d("2022-01-01")},
		{Title: "undated-b"},
		{Title: "new", Date: d("2024-01-01")},
	}
	sortByDate(items)
	var got []string
	for _, it := range items {
		got = append(got, it.Title)
	}
	assert.Equal(t, []string{"new", "old", "undated-a", "undated-b"}, got)
}
