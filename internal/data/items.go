package data

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/listing"
	"github.com/Bitlatte/teamsite/internal/palette"
)

// ItemRecord is the on-disk shape of a list item.
type ItemRecord struct {
	Label       string `yaml:"label"`
	URL         string `yaml:"url"`
	Icon        string `yaml:"icon"`
	Image       string `yaml:"image"`
	IconColor   string `yaml:"iconColor"`
	Badge       string `yaml:"badge"`
	Description string `yaml:"description"`
}

// Items validates records and converts them to list items. source names the
// file or page the records came from and prefixes every error.
//
// Unknown icon names are kept (they render as no icon) unless the loader is
// strict, in which case they fail like any other invalid field.
func (l *Loader) Items(source string, records []ItemRecord) ([]listing.Item, error) {
	items := make([]listing.Item, 0, len(records))
	for i, rec := range records {
		item, err := l.item(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: item %d: %w", source, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (l *Loader) item(rec ItemRecord) (listing.Item, error) {
	color, err := palette.Parse(rec.IconColor)
	if err != nil {
		return listing.Item{}, err
	}
	name, err := icon.Parse(rec.Icon)
	if err != nil {
		if l.Strict || !errors.Is(err, icon.ErrUnknownIcon) {
			return listing.Item{}, err
		}
		l.log().WithFields(logrus.Fields{
			"icon":  rec.Icon,
			"label": rec.Label,
		}).Warn("unknown icon, row will render without one")
		name = icon.Name(rec.Icon)
	}
	item := listing.Item{
		Label:       rec.Label,
		URL:         rec.URL,
		Icon:        name,
		Image:       rec.Image,
		IconColor:   color,
		Badge:       rec.Badge,
		Description: rec.Description,
	}
	if err := item.Validate(); err != nil {
		return listing.Item{}, err
	}
	return item, nil
}
