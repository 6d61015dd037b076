package model

import "github.com/Bitlatte/teamsite/internal/team"

// PageData is the context passed to content layouts.
type PageData struct {
	Site *SiteData
	Item *ContentItem
}

// TeamPageData is the context passed to the team layout.
type TeamPageData struct {
	Site *SiteData
	Team team.Page
}
