package indent

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrInvalidStyle = errors.New("invalid style")
)

// Style is a named or decoded indentation configuration. Symbol is a string
// for the sake of flag and config syntax, but must hold at most one rune; an
// empty Symbol means a space.
type Style struct {
	Step   uint8  `json:"step" yaml:"step"`
	Symbol string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// DefaultStyle is four spaces per level.
var DefaultStyle = Style{Step: 4, Symbol: " "}

var namedStyles = map[string]Style{
	"space": {Step: 4, Symbol: " "},
	"tab":   {Step: 1, Symbol: "\t"},
	"dot":   {Step: 2, Symbol: "."},
	"dash":  {Step: 2, Symbol: "-"},
}

var styleNames = []string{"space", "tab", "dot", "dash"}

// StyleNames returns the style names recognized by [ParseStyle].
func StyleNames() []string {
	out := make([]string, len(styleNames))
	copy(out, styleNames)
	return out
}

// ParseStyle parses a style string, typically a CLI flag value. It recognizes
// the named styles from [StyleNames], each with a default width, and
// "name=<width>" to override the width:
//
//	space      four spaces per level
//	tab        one tab per level
//	dot=3      three dots per level
func ParseStyle(s string) (Style, error) {
	name, width, hasWidth := strings.Cut(s, "=")
	style, ok := namedStyles[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	if hasWidth {
		n, err := strconv.ParseUint(width, 10, 8)
		if err != nil {
			return Style{}, fmt.Errorf("%w: width %q: must be 0-255", ErrInvalidStyle, width)
		}
		style.Step = uint8(n)
	}
	return style, nil
}

// DecodeStyle decodes a YAML style document from r and validates it:
//
//	step: 2
//	symbol: "."
func DecodeStyle(r io.Reader) (Style, error) {
	var s Style
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Style{}, fmt.Errorf("%w: %s", ErrInvalidStyle, err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate reports whether the style is usable. The only constraint is that
// Symbol holds at most one rune; a zero Step is valid and simply indents by
// nothing.
func (s Style) Validate() error {
	if utf8.RuneCountInString(s.Symbol) > 1 {
		return fmt.Errorf("%w: symbol %q: must be a single character", ErrInvalidStyle, s.Symbol)
	}
	return nil
}

// Writer returns a new [Writer] over w using this style.
func (s Style) Writer(w io.Writer) *Writer {
	return New(w, s.Step, s.symbol())
}

// Width returns the display width in terminal columns of levels steps of
// this style.
func (s Style) Width(levels int) int {
	return levels * int(s.Step) * runewidth.RuneWidth(s.symbol())
}

func (s Style) symbol() rune {
	if s.Symbol == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(s.Symbol)
	return r
}
