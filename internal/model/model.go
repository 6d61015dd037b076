package model

import (
	"html/template"
	"time"

	"github.com/Bitlatte/teamsite/internal/listing"
	"github.com/Bitlatte/teamsite/internal/team"
)

// ContentItem represents a single piece of content (e.g., blog post, project page).
type ContentItem struct {
	Title       string
	Date        time.Time
	Type        string
	SourcePath  string
	Permalink   string
	ContentHTML template.HTML
	Params      map[string]interface{}
	Summary     string
	Layout      string
	// Links are list rows declared in the page's frontmatter.
	Links []listing.Item
}

// SiteData holds all site-wide data, including configuration and content.
type SiteData struct {
	Title         string
	BaseURL       string
	Params        map[string]interface{}
	ContentItems  []*ContentItem
	Posts         []*ContentItem
	Projects      []*ContentItem
	ContentByType map[string][]*ContentItem
	Lists         map[string][]listing.Item
	Teams         []team.Team
}
