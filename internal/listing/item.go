package listing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/palette"
)

var (
	ErrMissingLabel = errors.New("item has no label")
	ErrMissingURL   = errors.New("item has no url")
	ErrUnsafeURL    = errors.New("item url scheme not allowed")
)

// Item describes one row. Label (or RichLabel) and URL are required; every
// other field is optional and its zero value means unset.
type Item struct {
	// ID is the row's element id, used as a deep-link anchor.
	ID    string
	Label string
	// RichLabel replaces the Label text when set.
	RichLabel templ.Component
	URL       string

	Icon        icon.Name
	Image       string
	IconColor   palette.Token
	Badge       string
	Description string
}

// Validate checks the required fields and that URL is relative or uses an
// http, https or mailto scheme.
func (i Item) Validate() error {
	if i.Label == "" && i.RichLabel == nil {
		return ErrMissingLabel
	}
	if i.URL == "" {
		return ErrMissingURL
	}
	u, err := url.Parse(strings.TrimSpace(i.URL))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsafeURL, u.Scheme)
	}
}
