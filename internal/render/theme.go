package render

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/itarato/peditor/internal/tokenizer"
)

// categoryToken maps a tokenizer.Category to the chroma token type whose
// style entry in a chroma style sheet best represents it. The Tokenizer
// itself never imports chroma — it produces plain markers independent
// of any display library — this mapping is the only place the two
// meet.
var categoryToken = map[tokenizer.Category]chroma.TokenType{
	tokenizer.Number:      chroma.LiteralNumber,
	tokenizer.String:      chroma.LiteralString,
	tokenizer.Keyword:     chroma.Keyword,
	tokenizer.Punctuation: chroma.Punctuation,
}

// Theme holds one lipgloss.Style per tokenizer category plus the
// chrome styles (gutter, status line, selection, search highlight)
// a TextView renderer needs. Styles are derived from a named chroma
// style sheet so swapping themes only means changing one string.
type Theme struct {
	Category map[tokenizer.Category]lipgloss.Style

	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style
	Text              lipgloss.Style
	Status            lipgloss.Style
	Selection         lipgloss.Style
	SearchHit         lipgloss.Style
}

// NewTheme builds a Theme from the named chroma style (e.g. "monokai",
// "dracula", "github"); unknown names fall back to chroma's default
// "swapoff" style the way chroma/v2/styles.Get itself does.
func NewTheme(name string) Theme {
	sheet := styles.Get(name)
	if sheet == nil {
		sheet = styles.Fallback
	}

	cat := make(map[tokenizer.Category]lipgloss.Style, len(categoryToken))
	for category, tok := range categoryToken {
		cat[category] = styleFor(sheet, tok)
	}

	return Theme{
		Category: cat,

		LineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "242"}).
			PaddingRight(1),
		CurrentLineNumber: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"}).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "252", Dark: "236"}).
			PaddingRight(1),
		Text: lipgloss.NewStyle(),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "7", Dark: "8"}).
			Background(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "7", Dark: "8"}),
		SearchHit: lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "11", Dark: "3"}).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}),
	}
}

func styleFor(sheet *chroma.Style, tok chroma.TokenType) lipgloss.Style {
	entry := sheet.Get(tok)
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

// StyleFor returns the style for category, falling back to Text for
// any category not present in Category — always the case for
// tokenizer.Default, which categoryToken leaves out.
func (t Theme) StyleFor(category tokenizer.Category) lipgloss.Style {
	if s, ok := t.Category[category]; ok {
		return s
	}
	return t.Text
}
