// Package markup holds the small HTML writer shared by the hand-written
// templ components in this module.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments to an underlying writer and keeps the first
// error it hits. Once an error is recorded every further call is a no-op.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s as escaped text content.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped. Empty values are skipped.
func (w *Writer) Attr(name, value string) {
	if value == "" {
		return
	}
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders c in place. A nil component writes nothing.
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func (w *Writer) Err() error {
	return w.err
}
