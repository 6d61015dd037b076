// Package palette maps the color tokens accepted in data files to the
// utility classes used to tint icons.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Token names a theme color.
type Token string

const (
	Blue     Token = "blue"
	Gray     Token = "gray"
	Green    Token = "green"
	Lilac    Token = "lilac"
	Orange   Token = "orange"
	Purple   Token = "purple"
	Red      Token = "red"
	Salmon   Token = "salmon"
	Seagreen Token = "seagreen"
	Teal     Token = "teal"
	Yellow   Token = "yellow"
)

// ErrUnknownToken is returned by Parse for tokens outside the palette.
var ErrUnknownToken = errors.New("unknown color token")

// Style is the pair of classes applied to an icon slot.
type Style struct {
	Background string
	Foreground string
}

// Class joins the non-empty classes of s.
func (s Style) Class() string {
	return strings.TrimSpace(s.Foreground + " " + s.Background)
}

// Accent is used when an item carries no color token.
var Accent = Style{Background: "bg-accent dark:bg-accent-dark"}

var styles = map[Token]Style{
	Blue:     tinted("blue"),
	Gray:     tinted("gray"),
	Green:    tinted("green"),
	Lilac:    tinted("lilac"),
	Orange:   tinted("orange"),
	Purple:   tinted("purple"),
	Red:      tinted("red"),
	Salmon:   tinted("salmon"),
	Seagreen: tinted("seagreen"),
	Teal:     tinted("teal"),
	Yellow:   tinted("yellow"),
}

func tinted(color string) Style {
	return Style{
		Background: "bg-" + color + " bg-opacity-20",
		Foreground: "text-" + color,
	}
}

// Parse validates raw against the palette. Case and surrounding space are
// ignored; an empty string yields the empty token.
func Parse(raw string) (Token, error) {
	tok := Token(strings.ToLower(strings.TrimSpace(raw)))
	if tok == "" {
		return "", nil
	}
	if _, ok := styles[tok]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownToken, raw)
	}
	return tok, nil
}

// StyleFor returns the style for tok, or Accent when tok is empty or unknown.
func StyleFor(tok Token) Style {
	if s, ok := styles[tok]; ok {
		return s
	}
	return Accent
}

// Tokens returns the palette in sorted order.
func Tokens() []Token {
	out := make([]Token, 0, len(styles))
	for tok := range styles {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
