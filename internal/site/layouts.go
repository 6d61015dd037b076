package site

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/listing"
	"github.com/Bitlatte/teamsite/internal/model"
	"github.com/Bitlatte/teamsite/internal/team"
)

const (
	baseLayout       = "base.html"
	partialsDir      = "partials"
	singleLayout     = "single.html"
	singlePostLayout = "single-post.html"
	homeLayout       = "home.html"
	postListLayout   = "list-posts.html"
	teamLayout       = "team.html"
	teamListLayout   = "list-teams.html"
)

// layoutSet holds one template set per page layout. Each set is a clone of
// base.html plus the partials with that layout parsed on top, so layouts can
// redefine the same blocks without clobbering each other.
type layoutSet struct {
	byName map[string]*template.Template
}

func (s *layoutSet) lookup(name string) (*template.Template, bool) {
	t, ok := s.byName[name]
	return t, ok
}

func loadLayouts(dir string, funcs template.FuncMap) (*layoutSet, error) {
	var base string
	var partials, pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case filepath.Dir(path) == filepath.Clean(dir) && d.Name() == baseLayout:
			base = path
		case strings.HasPrefix(path, filepath.Join(dir, partialsDir)+string(filepath.Separator)):
			partials = append(partials, path)
		default:
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files in '%s': %w", dir, err)
	}
	if base == "" {
		return nil, fmt.Errorf("%s not found directly in layouts directory '%s'", baseLayout, dir)
	}

	root, err := template.New(baseLayout).Funcs(funcs).ParseFiles(append([]string{base}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s and partials: %w", baseLayout, err)
	}

	set := &layoutSet{byName: map[string]*template.Template{}}
	baseClone, err := root.Clone()
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", baseLayout, err)
	}
	set.byName[baseLayout] = baseClone

	for _, page := range pages {
		name := filepath.Base(page)
		if _, dup := set.byName[name]; dup {
			return nil, fmt.Errorf("duplicate layout name %q (%s)", name, page)
		}
		clone, err := root.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone %s for %s: %w", baseLayout, name, err)
		}
		t, err := clone.ParseFiles(page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout '%s': %w", page, err)
		}
		set.byName[name] = t
	}
	return set, nil
}

// templateFuncs exposes the list renderer and its collaborators to layouts.
func templateFuncs(ctx context.Context, site *model.SiteData, teamsPath string) template.FuncMap {
	render := func(c templ.Component) (template.HTML, error) {
		return templ.ToGoHTML(ctx, c)
	}
	withClass := func(class []string) []listing.Option {
		if len(class) == 0 {
			return nil
		}
		return []listing.Option{listing.WithClass(strings.Join(class, " "))}
	}
	return template.FuncMap{
		"list": func(items []listing.Item, class ...string) (template.HTML, error) {
			return render(listing.List(items, withClass(class)...))
		},
		"namedList": func(name string, class ...string) (template.HTML, error) {
			items, ok := site.Lists[name]
			if !ok {
				return "", fmt.Errorf("no data list named %q", name)
			}
			return render(listing.List(items, withClass(class)...))
		},
		"icon": func(name string) (template.HTML, error) {
			c, ok := icon.Lookup(icon.Name(name))
			if !ok {
				return "", nil
			}
			return render(c)
		},
		"teamURL": func(t team.Team) string {
			return teamPermalink(teamsPath, t)
		},
		"flag": team.Flag,
	}
}

func teamPermalink(teamsPath string, t team.Team) string {
	return "/" + strings.Trim(teamsPath, "/") + "/" + t.PageSlug() + "/"
}
