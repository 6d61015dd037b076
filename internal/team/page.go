package team

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/yuin/goldmark"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/listing"
)

// Page is the view model for a team layout.
type Page struct {
	Team            Team
	Title           string
	Slug            string
	DescriptionHTML template.HTML
	ObjectivesHTML  template.HTML
	People          []listing.Item
	PineappleText   string

	InProgress              []Roadmap
	InProgressItems         []listing.Item
	UnderConsideration      []Roadmap
	UnderConsiderationItems []listing.Item
	RecentlyShipped         *Roadmap
}

// NewPage derives every section of a team page. Objectives are markdown and
// are converted with md; the description is trusted HTML from the data file.
func NewPage(t Team, md goldmark.Markdown) (Page, error) {
	p := Page{
		Team:            t,
		Title:           t.DisplayName(),
		Slug:            t.PageSlug(),
		DescriptionHTML: template.HTML(t.Description),
		People:          ProfileItems(t.Profiles),
		PineappleText:   PineappleText(PineapplePercentage(t.Profiles)),
	}

	if t.Objectives != "" {
		var buf bytes.Buffer
		if err := md.Convert([]byte(t.Objectives), &buf); err != nil {
			return Page{}, fmt.Errorf("convert objectives for team %q: %w", t.Name, err)
		}
		p.ObjectivesHTML = template.HTML(buf.String())
	}

	p.InProgress = InProgress(t.Roadmaps)
	p.InProgressItems = RoadmapItems(p.InProgress, icon.Rocket)
	p.UnderConsideration = UnderConsideration(t.Roadmaps)
	p.UnderConsiderationItems = RoadmapItems(p.UnderConsideration, icon.Lightbulb)
	if shipped, ok := RecentlyShipped(t.Roadmaps); ok {
		p.RecentlyShipped = &shipped
	}
	return p, nil
}

// PineappleText answers the small team FAQ from a pineapple percentage.
func PineappleText(pct int, ok bool) string {
	switch {
	case !ok:
		return "This team hasn't weighed in yet"
	case pct > 50:
		return fmt.Sprintf("Yes! %d%% of this team say pineapple belongs on pizza", pct)
	case pct == 50:
		return "This team is split right down the middle"
	default:
		return fmt.Sprintf("No! Only %d%% of this team say pineapple belongs on pizza", pct)
	}
}

// ProfileItems turns a roster into list rows linking to each profile. Each
// row is anchored by the profile's AnchorID.
func ProfileItems(profiles []Profile) []listing.Item {
	items := make([]listing.Item, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, listing.Item{
			ID:          p.AnchorID(),
			Label:       p.FullName(),
			URL:         p.URL(),
			Image:       p.AvatarURL(),
			Description: p.CompanyRole,
			Badge:       Flag(p.Country),
		})
	}
	return items
}

// RoadmapItems turns roadmap entries into list rows. A row links to the
// entry's call to action, then its first GitHub page, then an in-page anchor.
// The badge is "beta" when a beta is available, otherwise the vote count.
func RoadmapItems(roadmaps []Roadmap, ic icon.Name) []listing.Item {
	items := make([]listing.Item, 0, len(roadmaps))
	for _, r := range roadmaps {
		item := listing.Item{
			Label:       r.Title,
			URL:         roadmapURL(r),
			Icon:        ic,
			Description: r.Description,
		}
		if r.BetaAvailable {
			item.Badge = "beta"
		} else if votes := r.Votes(); votes > 0 {
			item.Badge = voteBadge(votes)
		}
		items = append(items, item)
	}
	return items
}

func voteBadge(votes int) string {
	if votes == 1 {
		return "1 vote"
	}
	return strconv.Itoa(votes) + " votes"
}

func roadmapURL(r Roadmap) string {
	if r.CTA != nil && r.CTA.URL != "" {
		return r.CTA.URL
	}
	for _, p := range r.GithubPages {
		if p.HTMLURL != "" {
			return p.HTMLURL
		}
	}
	return "#" + KebabCase(r.Title)
}
