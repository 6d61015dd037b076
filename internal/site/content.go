package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/teamsite/internal/data"
	"github.com/Bitlatte/teamsite/internal/dateparse"
	"github.com/Bitlatte/teamsite/internal/model"
)

const defaultContentType = "page"

// pageMatter is the frontmatter understood by the builder. Keys it does not
// name end up in Params.
type pageMatter struct {
	Title   string                 `yaml:"title"`
	Type    string                 `yaml:"type"`
	Date    string                 `yaml:"date"`
	Summary string                 `yaml:"summary"`
	Layout  string                 `yaml:"layout"`
	Links   []data.ItemRecord      `yaml:"links"`
	Params  map[string]interface{} `yaml:",inline"`
}

// collectContent converts every markdown file under contentDir into a
// ContentItem.
func (b *Builder) collectContent(contentDir string) ([]*model.ContentItem, error) {
	var items []*model.ContentItem
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		item, err := b.readContent(contentDir, path)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", err)
	}
	return items, nil
}

func (b *Builder) readContent(contentDir, path string) (*model.ContentItem, error) {
	log := b.log.WithField("file", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var fm pageMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		log.WithError(err).Warn("could not parse frontmatter, treating as pure markdown")
		body = raw
		fm = pageMatter{}
	}

	var html bytes.Buffer
	if err := b.md.Convert(body, &html); err != nil {
		return nil, fmt.Errorf("failed to convert markdown to HTML for file '%s': %w", path, err)
	}

	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get relative path for %s: %w", path, err)
	}

	links, err := b.loader.Items(path, fm.Links)
	if err != nil {
		return nil, err
	}

	item := &model.ContentItem{
		Title:       fm.Title,
		Type:        contentType(rel, fm.Type),
		SourcePath:  path,
		Permalink:   permalink(rel),
		ContentHTML: template.HTML(html.String()),
		Params:      fm.Params,
		Summary:     fm.Summary,
		Layout:      fm.Layout,
		Links:       links,
	}
	if item.Title == "" {
		item.Title = titleFromFilename(filepath.Base(path))
	}
	if item.Params == nil {
		item.Params = map[string]interface{}{}
	}
	if fm.Date != "" {
		date, err := dateparse.Parse(fm.Date)
		if err != nil {
			log.WithError(err).Warn("could not parse date, use YYYY-MM-DD or RFC3339")
		} else {
			item.Date = date
		}
	}

	log.WithFields(logrus.Fields{
		"type":      item.Type,
		"permalink": item.Permalink,
		"layout":    item.Layout,
	}).Debug("collected content")
	return item, nil
}

// contentType is the first directory under the content root, "page" for
// top-level files, unless the frontmatter names one.
func contentType(rel, fromMatter string) string {
	if fromMatter != "" {
		return fromMatter
	}
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "" {
		return defaultContentType
	}
	return strings.SplitN(dir, "/", 2)[0]
}

// permalink maps posts/hello-world.md to /posts/hello-world/.
func permalink(rel string) string {
	p := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	p = "/" + strings.Trim(p, "/") + "/"
	return strings.ReplaceAll(p, "//", "/")
}

func titleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

// sortByDate orders items newest first; undated items go last and keep
// their relative order.
func sortByDate(items []*model.ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date.IsZero() {
			return false
		}
		if items[j].Date.IsZero() {
			return true
		}
		return items[i].Date.After(items[j].Date)
	})
}
