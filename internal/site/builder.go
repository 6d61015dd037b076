// Package site builds the static site: it copies static assets, loads data
// files, renders markdown content and team pages through the layouts, and
// writes everything under the output directory.
package site

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/teamsite/internal/config"
	"github.com/Bitlatte/teamsite/internal/data"
	"github.com/Bitlatte/teamsite/internal/model"
	"github.com/Bitlatte/teamsite/internal/team"
)

type Builder struct {
	cfg    config.Config
	log    logrus.FieldLogger
	md     goldmark.Markdown
	loader *data.Loader
}

func NewBuilder(cfg config.Config, log logrus.FieldLogger) *Builder {
	return &Builder{
		cfg: cfg,
		log: log,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		loader: &data.Loader{Strict: cfg.StrictData, Logger: log},
	}
}

// Build runs one full build into the configured output directory and
// returns the site data the pages were rendered from.
func (b *Builder) Build(ctx context.Context) (*model.SiteData, error) {
	start := time.Now()
	cfg := b.cfg
	b.log.WithFields(logrus.Fields{
		"outputDir": cfg.OutputDir,
		"baseURL":   cfg.BaseURL,
		"siteTitle": cfg.SiteTitle,
	}).Info("starting build")

	if _, err := os.Stat(cfg.ContentDir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("content directory '%s' not found, create it and add your Markdown files", cfg.ContentDir)
	}
	if _, err := os.Stat(cfg.LayoutsDir); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("layouts directory '%s' not found, create it and add your .html layout files", cfg.LayoutsDir)
	}

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if err := copyTree(b.log, cfg.StaticDir, cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to copy static assets: %w", err)
		}
		b.log.WithField("staticDir", cfg.StaticDir).Info("copied static assets")
	} else {
		b.log.WithField("staticDir", cfg.StaticDir).Info("static directory not found, skipping copy")
	}

	site, err := b.loadSite()
	if err != nil {
		return nil, err
	}

	layouts, err := loadLayouts(cfg.LayoutsDir, templateFuncs(ctx, site, cfg.TeamsPath))
	if err != nil {
		return nil, err
	}

	if err := b.renderContent(layouts, site); err != nil {
		return nil, err
	}
	if err := b.renderHome(layouts, site); err != nil {
		return nil, err
	}
	if err := b.renderPostList(layouts, site); err != nil {
		return nil, err
	}
	if err := b.renderTeams(layouts, site); err != nil {
		return nil, err
	}

	b.log.WithFields(logrus.Fields{
		"pages":    len(site.ContentItems),
		"teams":    len(site.Teams),
		"duration": time.Since(start).String(),
	}).Info("build completed")
	return site, nil
}

func (b *Builder) loadSite() (*model.SiteData, error) {
	params, err := readParams(b.cfg.File)
	if err != nil {
		return nil, err
	}

	set, err := b.loader.Load(b.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	items, err := b.collectContent(b.cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	sortByDate(items)

	site := &model.SiteData{
		Title:         b.cfg.SiteTitle,
		BaseURL:       b.cfg.BaseURL,
		Params:        params,
		ContentItems:  items,
		ContentByType: map[string][]*model.ContentItem{},
		Lists:         set.Lists,
		Teams:         set.Teams,
	}
	for _, item := range items {
		site.ContentByType[item.Type] = append(site.ContentByType[item.Type], item)
		switch item.Type {
		case "posts", "post":
			site.Posts = append(site.Posts, item)
		case "project", "projects":
			site.Projects = append(site.Projects, item)
		}
	}
	b.log.WithFields(logrus.Fields{
		"items":    len(items),
		"posts":    len(site.Posts),
		"projects": len(site.Projects),
		"lists":    len(site.Lists),
	}).Info("collected content")
	return site, nil
}

// readParams loads the raw config file so layouts can read arbitrary keys
// through .Site.Params.
func readParams(file string) (map[string]interface{}, error) {
	params := map[string]interface{}{}
	if file == "" {
		return params, nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", file, err)
	}
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", file, err)
	}
	return params, nil
}

// pickLayout resolves the layout for a content item: frontmatter first, then
// single-post.html for posts, then single.html, then base.html.
func (b *Builder) pickLayout(layouts *layoutSet, item *model.ContentItem) (*template.Template, string, error) {
	log := b.log.WithField("item", item.Title)
	candidates := []string{}
	if item.Layout != "" {
		candidates = append(candidates, item.Layout)
	}
	if item.Type == "posts" || item.Type == "post" {
		candidates = append(candidates, singlePostLayout)
	}
	candidates = append(candidates, singleLayout, baseLayout)

	for i, name := range candidates {
		if t, ok := layouts.lookup(name); ok {
			if i > 0 && item.Layout != "" {
				log.WithFields(logrus.Fields{"wanted": item.Layout, "using": name}).Warn("frontmatter layout not found")
			}
			return t, name, nil
		}
	}
	return nil, "", fmt.Errorf("no layout found for item '%s'", item.Title)
}

func (b *Builder) renderContent(layouts *layoutSet, site *model.SiteData) error {
	for _, item := range site.ContentItems {
		t, name, err := b.pickLayout(layouts, item)
		if err != nil {
			return err
		}
		if err := b.writePage(item.Permalink, t, name, model.PageData{Site: site, Item: item}); err != nil {
			return fmt.Errorf("item '%s': %w", item.Title, err)
		}
	}
	return nil
}

func (b *Builder) renderHome(layouts *layoutSet, site *model.SiteData) error {
	t, ok := layouts.lookup(homeLayout)
	if !ok {
		return fmt.Errorf("homepage layout '%s' not found, create it in the layouts directory", homeLayout)
	}
	return b.writePage("/", t, homeLayout, model.PageData{Site: site})
}

func (b *Builder) renderPostList(layouts *layoutSet, site *model.SiteData) error {
	t, ok := layouts.lookup(postListLayout)
	if !ok {
		b.log.WithField("layout", postListLayout).Warn("post list layout not found, skipping post list page")
		return nil
	}
	return b.writePage("/posts/", t, postListLayout, model.PageData{Site: site})
}

func (b *Builder) renderTeams(layouts *layoutSet, site *model.SiteData) error {
	if len(site.Teams) == 0 {
		return nil
	}
	t, ok := layouts.lookup(teamLayout)
	if !ok {
		b.log.WithField("layout", teamLayout).Warn("team layout not found, skipping team pages")
		return nil
	}
	for _, tm := range site.Teams {
		page, err := team.NewPage(tm, b.md)
		if err != nil {
			return err
		}
		path := teamPermalink(b.cfg.TeamsPath, tm)
		if err := b.writePage(path, t, teamLayout, model.TeamPageData{Site: site, Team: page}); err != nil {
			return fmt.Errorf("team '%s': %w", tm.Name, err)
		}
	}
	if idx, ok := layouts.lookup(teamListLayout); ok {
		return b.writePage("/"+b.cfg.TeamsPath+"/", idx, teamListLayout, model.PageData{Site: site})
	}
	return nil
}

// writePage executes the named template into <outputDir><permalink>index.html.
func (b *Builder) writePage(permalink string, t *template.Template, name string, data interface{}) error {
	out := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(permalink), "index.html")
	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", filepath.Dir(out), err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", out, err)
	}
	if err := t.ExecuteTemplate(f, name, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to execute template '%s' (outputting to '%s'): %w", name, out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", out, err)
	}
	b.log.WithFields(logrus.Fields{"path": out, "layout": name}).Debug("generated page")
	return nil
}
