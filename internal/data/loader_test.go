package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/listing"
	"github.com/Bitlatte/teamsite/internal/palette"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

const docsList = `
- label: Docs
  url: /docs
  icon: Book
  iconColor: blue
- label: Blog
  url: /blog
  image: https://x/y.png
  badge: New
  description: Latest posts
`

const platformTeam = `
name: Platform
description: Keeps the lights on.
profiles:
  - id: "1"
    firstName: Ada
    lastName: Lovelace
    companyRole: Engineer
    country: gb
    pineappleOnPizza: true
roadmaps:
  - title: Faster ingestion
    projectedCompletion: "2024-10-01"
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lists", "docs.yaml"), docsList)
	writeFile(t, filepath.Join(dir, "lists", "README.md"), "ignored")
	writeFile(t, filepath.Join(dir, "teams", "platform.yml"), platformTeam)

	set, err := (&Loader{}).Load(dir)
	require.NoError(t, err)

	require.Contains(t, set.Lists, "docs")
	assert.Equal(t, []listing.Item{
		{Label: "Docs", URL: "/docs", Icon: icon.Book, IconColor: palette.Blue},
		{Label: "Blog", URL: "/blog", Image: "https://x/y.png", Badge: "New", Description: "Latest posts"},
	}, set.Lists["docs"])

	require.Len(t, set.Teams, 1)
	tm := set.Teams[0]
	assert.Equal(t, "Platform", tm.Name)
	assert.Equal(t, "platform", tm.PageSlug())
	require.Len(t, tm.Profiles, 1)
	assert.True(t, tm.Profiles[0].PineappleOnPizza)
	require.Len(t, tm.Roadmaps, 1)
	assert.Equal(t, "2024-10-01", tm.Roadmaps[0].ProjectedCompletion)
}

func TestLoadMissingDirectory(t *testing.T) {
	set, err := (&Loader{}).Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, set.Lists)
	assert.Empty(t, set.Teams)
}

func TestLoadRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "missing label", body: "- url: /x\n", want: listing.ErrMissingLabel},
		{name: "missing url", body: "- label: X\n", want: listing.ErrMissingURL},
		{name: "bad color", body: "- label: X\n  url: /x\n  iconColor: chartreuse\n", want: palette.ErrUnknownToken},
		{name: "script url", body: "- label: X\n  url: \"javascript:alert(1)\"\n", want: listing.ErrUnsafeURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "lists", "bad.yaml"), tt.body)
			_, err := (&Loader{}).Load(dir)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "bad.yaml: item 0")
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lists", "typo.yaml"), "- label: X\n  link: /x\n")
	_, err := (&Loader{}).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode data file")
}

func TestUnknownIconLenientAndStrict(t *testing.T) {
	records := []ItemRecord{{Label: "Ghost", URL: "/ghost", Icon: "NonexistentIcon"}}

	logger, hook := test.NewNullLogger()
	items, err := (&Loader{Logger: logger}).Items("inline", records)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, icon.Name("NonexistentIcon"), items[0].Icon)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	_, err = (&Loader{Strict: true, Logger: logger}).Items("inline", records)
	require.ErrorIs(t, err, icon.ErrUnknownIcon)
}

func TestDuplicateTeamSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "teams", "a.yaml"), "name: Growth\n")
	writeFile(t, filepath.Join(dir, "teams", "b.yaml"), "name: Other\nslug: growth\n")
	_, err := (&Loader{}).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `team slug "growth" already used`)
}

func TestTeamsLoadInFileNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "teams", "20-growth.yaml"), "name: Growth\n")
	writeFile(t, filepath.Join(dir, "teams", "03-replay.yml"), "name: Session Replay\n")
	writeFile(t, filepath.Join(dir, "teams", "10-analytics.yaml"), "name: Product Analytics\n")
	writeFile(t, filepath.Join(dir, "teams", "notes.txt"), "not a team")

	set, err := (&Loader{}).Load(dir)
	require.NoError(t, err)

	var names []string
	for _, tm := range set.Teams {
		names = append(names, tm.Name)
	}
	assert.Equal(t, []string{"Session Replay", "Product Analytics", "Growth"}, names)
}
