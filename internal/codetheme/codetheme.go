// Package codetheme resolves the accent color used for inline code runs.
// Colors come from an explicit hex value or from a chroma style.
package codetheme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2docx/internal/document"
)

// Sentinel errors for theme resolution.
var (
	ErrUnknownCodeTheme = errors.New("unknown code theme")
	ErrInvalidColor     = errors.New("invalid color")
)

// DefaultColor is the inline code accent when no theme or color is set.
var DefaultColor = document.Color{R: 200, G: 0, B: 0}

// DefaultFont is the fixed-width font used for inline code.
const DefaultFont = "Courier New"

// Resolve returns the accent color for inline code.
// An explicit hex color wins over the theme; with neither, DefaultColor.
func Resolve(theme, hex string) (document.Color, error) {
	if hex != "" {
		return ParseHex(hex)
	}
	if theme == "" {
		return DefaultColor, nil
	}
	return FromStyle(theme)
}

// ParseHex parses "#RRGGBB", "RRGGBB" or "#RGB".
func ParseHex(hex string) (document.Color, error) {
	c := chroma.ParseColour(strings.TrimSpace(hex))
	if !c.IsSet() {
		return document.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return document.Color{R: c.Red(), G: c.Green(), B: c.Blue()}, nil
}

// FromStyle returns the string-literal color of the named chroma style.
// Styles that leave string literals uncolored fall back to their name color,
// then to DefaultColor.
func FromStyle(name string) (document.Color, error) {
	style, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return document.Color{}, fmt.Errorf("%w: %q", ErrUnknownCodeTheme, name)
	}

	for _, tt := range []chroma.TokenType{chroma.LiteralString, chroma.NameBuiltin, chroma.Keyword} {
		if c := style.Get(tt).Colour; c.IsSet() {
			return document.Color{R: c.Red(), G: c.Green(), B: c.Blue()}, nil
		}
	}
	return DefaultColor, nil
}

// Available returns the sorted names of all registered themes.
func Available() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
