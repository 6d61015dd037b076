// Package listing renders an ordered sequence of items as a list of
// navigable rows. Rendering is a pure function of its input: nothing is
// fetched, sorted or filtered here.
package listing

import (
	"context"
	"io"
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/teamsite/internal/icon"
	"github.com/Bitlatte/teamsite/internal/link"
	"github.com/Bitlatte/teamsite/internal/markup"
	"github.com/Bitlatte/teamsite/internal/palette"
)

const (
	listClass  = "list-none m-0 p-0"
	rowClass   = "group flex items-center space-x-2 relative px-2 pt-1.5 pb-1 mb-1 rounded border border-b-3 border-transparent hover:border-light dark:hover:border-dark hover:translate-y-[-1px] active:translate-y-[1px] active:transition-all !text-inherit hover:!text-inherit"
	iconClass  = "inline-flex w-10 h-10 p-2 rounded-sm shrink-0"
	imageClass = "icon w-12 h-12 p-2 rounded-sm"
	labelClass = "overflow-hidden text-ellipsis whitespace-nowrap"
	descClass  = "text-sm font-normal opacity-60 overflow-hidden text-ellipsis whitespace-nowrap"
	badgeClass = "ml-auto inline-flex px-2 items-center text-[12px] uppercase text-opacity-50"
)

type options struct {
	class string
}

// Option configures List.
type Option func(*options)

// WithClass merges class into the list's base classes; conflicting
// utilities in class win.
func WithClass(class string) Option {
	return func(o *options) { o.class = class }
}

// List renders items as a <ul>, one row per item in input order.
func List(items []Item, opts ...Option) templ.Component {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	class := listClass
	if o.class != "" {
		class = twmerge.Merge(listClass, o.class)
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.NewWriter(w)
		mw.Raw("<ul")
		mw.Attr("class", class)
		mw.Raw(">")
		for i, item := range items {
			mw.Component(ctx, Row(i, item))
		}
		mw.Raw("</ul>")
		return mw.Err()
	})
}

// Row renders a single <li> for item. index is the item's position in the
// list being rendered; item.ID, when set, becomes the row's id.
func Row(index int, item Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.NewWriter(w)
		mw.Raw("<li")
		mw.Attr("id", item.ID)
		mw.Raw(` data-row="` + strconv.Itoa(index) + `">`)
		mw.Component(ctx, link.Link(item.URL, rowClass, rowBody(item)))
		mw.Raw("</li>")
		return mw.Err()
	})
}

func rowBody(item Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mw := markup.NewWriter(w)
		if item.Image != "" {
			mw.Raw(`<img data-slot="image"`)
			mw.Attr("class", imageClass)
			mw.Attr("src", item.Image)
			mw.Raw(` alt="">`)
		} else if c, ok := icon.Lookup(item.Icon); ok {
			mw.Raw(`<span data-slot="icon"`)
			mw.Attr("data-icon", string(item.Icon))
			mw.Attr("class", iconClass+" "+palette.StyleFor(item.IconColor).Class())
			mw.Raw(">")
			mw.Component(ctx, c)
			mw.Raw("</span>")
		}

		mw.Raw(`<span class="grid">`)
		mw.Raw(`<span data-slot="label"`)
		mw.Attr("class", labelClass)
		mw.Raw(">")
		if item.RichLabel != nil {
			mw.Component(ctx, item.RichLabel)
		} else {
			mw.Text(item.Label)
		}
		mw.Raw("</span>")
		if item.Description != "" {
			mw.Raw(`<span data-slot="description"`)
			mw.Attr("class", descClass)
			mw.Raw(">")
			mw.Text(item.Description)
			mw.Raw("</span>")
		}
		mw.Raw("</span>")

		if item.Badge != "" {
			mw.Raw(`<span data-slot="badge"`)
			mw.Attr("class", badgeClass)
			mw.Raw(">")
			mw.Text(cases.Upper(language.Und).String(item.Badge))
			mw.Raw("</span>")
		}
		return mw.Err()
	})
}
