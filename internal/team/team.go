// Package team models the team roster and roadmap data behind team pages
// and derives the page sections from it.
package team

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/Bitlatte/teamsite/internal/dateparse"
)

// DefaultAvatar is shown for profiles without an avatar.
const DefaultAvatar = "https://res.cloudinary.com/dmukukwp6/image/upload/v1698231117/max_6942263bd1.png"

type Team struct {
	Name        string    `yaml:"name"`
	Slug        string    `yaml:"slug"`
	Description string    `yaml:"description"`
	Crest       string    `yaml:"crest"`
	Objectives  string    `yaml:"objectives"`
	Profiles    []Profile `yaml:"profiles"`
	Roadmaps    []Roadmap `yaml:"roadmaps"`
}

// DisplayName is the page heading, e.g. "Product Analytics Team".
func (t Team) DisplayName() string {
	return t.Name + " Team"
}

// PageSlug returns Slug, or the kebab-cased name when Slug is empty.
func (t Team) PageSlug() string {
	if t.Slug != "" {
		return t.Slug
	}
	return KebabCase(t.Name)
}

type Profile struct {
	ID               string `yaml:"id"`
	FirstName        string `yaml:"firstName"`
	LastName         string `yaml:"lastName"`
	CompanyRole      string `yaml:"companyRole"`
	Country          string `yaml:"country"`
	Location         string `yaml:"location"`
	Avatar           string `yaml:"avatar"`
	PineappleOnPizza bool   `yaml:"pineappleOnPizza"`
}

func (p Profile) FullName() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.FirstName, p.LastName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// AnchorID is the heading id used to deep-link a profile card.
func (p Profile) AnchorID() string {
	return KebabCase(p.FullName()) + "-" + KebabCase(p.CompanyRole)
}

func (p Profile) URL() string {
	return "/community/profiles/" + p.ID
}

func (p Profile) AvatarURL() string {
	if p.Avatar == "" {
		return DefaultAvatar
	}
	return p.Avatar
}

type Roadmap struct {
	SqueakID            int          `yaml:"squeakId"`
	Title               string       `yaml:"title"`
	Description         string       `yaml:"description"`
	Complete            bool         `yaml:"complete"`
	BetaAvailable       bool         `yaml:"betaAvailable"`
	DateCompleted       string       `yaml:"dateCompleted"`
	ProjectedCompletion string       `yaml:"projectedCompletion"`
	GithubPages         []GithubPage `yaml:"githubPages"`
	CTA                 *CTA         `yaml:"cta"`
}

// CompletedAt parses DateCompleted. ok is false when it is empty or invalid.
func (r Roadmap) CompletedAt() (time.Time, bool) {
	if r.DateCompleted == "" {
		return time.Time{}, false
	}
	t, err := dateparse.Parse(r.DateCompleted)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Votes sums the reactions across all linked GitHub pages.
func (r Roadmap) Votes() int {
	total := 0
	for _, p := range r.GithubPages {
		total += p.Reactions.Total()
	}
	return total
}

type GithubPage struct {
	Title     string    `yaml:"title"`
	HTMLURL   string    `yaml:"html_url"`
	Number    int       `yaml:"number"`
	ClosedAt  string    `yaml:"closed_at"`
	Reactions Reactions `yaml:"reactions"`
}

type Reactions struct {
	Hooray int `yaml:"hooray"`
	Heart  int `yaml:"heart"`
	Eyes   int `yaml:"eyes"`
	Plus1  int `yaml:"plus1"`
}

func (r Reactions) Total() int {
	return r.Hooray + r.Heart + r.Eyes + r.Plus1
}

type CTA struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// PineapplePercentage is the rounded share of profiles that want pineapple
// on pizza. ok is false for an empty roster.
func PineapplePercentage(profiles []Profile) (pct int, ok bool) {
	if len(profiles) == 0 {
		return 0, false
	}
	yes := 0
	for _, p := range profiles {
		if p.PineappleOnPizza {
			yes++
		}
	}
	return int(math.Round(float64(yes) / float64(len(profiles)) * 100)), true
}

// UnderConsideration returns roadmap items that are neither completed nor
// scheduled but have at least one GitHub page to vote on.
func UnderConsideration(roadmaps []Roadmap) []Roadmap {
	var out []Roadmap
	for _, r := range roadmaps {
		if r.DateCompleted == "" && r.ProjectedCompletion == "" && len(r.GithubPages) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// InProgress returns incomplete items with a projected completion date.
func InProgress(roadmaps []Roadmap) []Roadmap {
	var out []Roadmap
	for _, r := range roadmaps {
		if !r.Complete && r.ProjectedCompletion != "" {
			out = append(out, r)
		}
	}
	return out
}

// RecentlyShipped returns the complete item with the latest completion
// date. Items without a parseable date sort last.
func RecentlyShipped(roadmaps []Roadmap) (Roadmap, bool) {
	var done []Roadmap
	for _, r := range roadmaps {
		if r.Complete {
			done = append(done, r)
		}
	}
	if len(done) == 0 {
		return Roadmap{}, false
	}
	sort.SliceStable(done, func(i, j int) bool {
		ti, _ := done[i].CompletedAt()
		tj, _ := done[j].CompletedAt()
		return ti.After(tj)
	})
	return done[0], true
}

// Flag returns the emoji flag for an ISO 3166 alpha-2 country code.
// "world" maps to a globe; anything else unusable yields "".
func Flag(country string) string {
	country = strings.TrimSpace(country)
	if strings.EqualFold(country, "world") {
		return "🌎"
	}
	if len(country) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(country) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// KebabCase lower-cases s and joins its alphanumeric runs with dashes.
func KebabCase(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
