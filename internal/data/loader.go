// Package data loads the site's structured data files: named lists of
// navigation items and team rosters.
package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/teamsite/internal/listing"
	"github.com/Bitlatte/teamsite/internal/team"
)

const (
	listsDir = "lists"
	teamsDir = "teams"
)

// Set is everything loaded from a data directory.
type Set struct {
	Lists map[string][]listing.Item
	Teams []team.Team
}

type Loader struct {
	Strict bool
	Logger logrus.FieldLogger
}

func (l *Loader) log() logrus.FieldLogger {
	if l.Logger == nil {
		return logrus.StandardLogger()
	}
	return l.Logger
}

// Load reads dir/lists/*.yaml and dir/teams/*.yaml. Missing directories
// yield an empty set.
func (l *Loader) Load(dir string) (*Set, error) {
	set := &Set{Lists: map[string][]listing.Item{}}

	listFiles, err := yamlFiles(filepath.Join(dir, listsDir))
	if err != nil {
		return nil, err
	}
	for _, path := range listFiles {
		var records []ItemRecord
		if err := readYAML(path, &records); err != nil {
			return nil, err
		}
		items, err := l.Items(path, records)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		set.Lists[name] = items
		l.log().WithFields(logrus.Fields{"list": name, "items": len(items)}).Debug("loaded list")
	}

	teamFiles, err := yamlFiles(filepath.Join(dir, teamsDir))
	if err != nil {
		return nil, err
	}
	seen := map[string]string{}
	for _, path := range teamFiles {
		var t team.Team
		if err := readYAML(path, &t); err != nil {
			return nil, err
		}
		if t.Name == "" {
			return nil, fmt.Errorf("%s: team has no name", path)
		}
		slug := t.PageSlug()
		if prev, dup := seen[slug]; dup {
			return nil, fmt.Errorf("%s: team slug %q already used by %s", path, slug, prev)
		}
		seen[slug] = path
		set.Teams = append(set.Teams, t)
		l.log().WithFields(logrus.Fields{"team": t.Name, "profiles": len(t.Profiles)}).Debug("loaded team")
	}
	return set, nil
}

// yamlFiles lists *.yaml and *.yml files directly under dir in name order.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data directory '%s': %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func readYAML(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read data file '%s': %w", path, err)
	}
	if err := yaml.UnmarshalStrict(b, out); err != nil {
		return fmt.Errorf("decode data file '%s': %w", path, err)
	}
	return nil
}
