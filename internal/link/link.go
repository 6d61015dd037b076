// Package link is the navigation primitive used by rendered components.
// Targets on another host open in a new tab; everything else is a plain
// anchor left to the browser.
package link

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/Bitlatte/teamsite/internal/markup"
)

// IsExternal reports whether href is an absolute http(s) URL.
func IsExternal(href string) bool {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Link renders children inside an anchor pointing at href. The href is
// written verbatim (HTML-escaped only).
func Link(href, class string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.NewWriter(w)
		mw.Raw("<a")
		mw.Raw(` href="` + templ.EscapeString(href) + `"`)
		mw.Attr("class", class)
		if IsExternal(href) {
			mw.Raw(` target="_blank" rel="noopener noreferrer"`)
		}
		mw.Raw(">")
		mw.Component(ctx, children)
		mw.Raw("</a>")
		return mw.Err()
	})
}
