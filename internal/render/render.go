package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/cardtable/internal/card"
)

const (
	innerWidth = 7
	minWidth   = 40
)

// Table column widths; the glyph column is one rune and columns are
// separated by a single space.
const (
	idWidth    = 12
	valueWidth = 4
	modeWidth  = 6
	fixedWidth = idWidth + 1 + 1 + 1 + valueWidth + 1 + modeWidth + 1
)

var (
	paper   = colorful.Color{R: 0.96, G: 0.95, B: 0.91}
	red     = colorful.Color{R: 0.75, G: 0.16, B: 0.17}
	black   = colorful.Color{R: 0.10, G: 0.10, B: 0.12}
	navy    = colorful.Color{R: 0.09, G: 0.16, B: 0.38}
	pattern = navy.BlendLab(paper, 0.25)
)

// Options controls how a card is drawn
type Options struct {
	// TrueColor emits 24-bit ANSI colour escapes around the card body
	TrueColor bool
}

// Card draws c as a small bordered card. Cards in shirt mode show only
// their back, so neither value nor suit is revealed.
func Card(c *card.CardListItem, opts Options) string {
	var rows []string
	var fg, bg colorful.Color

	if c.Mode == card.ModeShirt {
		fg, bg = pattern, navy
		for i := 0; i < 3; i++ {
			rows = append(rows, strings.Repeat("░", innerWidth))
		}
	} else {
		fg, bg = black, paper
		if c.Suit.Red() {
			fg = red
		}
		value := truncate(c.Value, innerWidth)
		rows = append(rows,
			padRight(value, innerWidth),
			center(c.Suit.Symbol(), innerWidth),
			padLeft(value, innerWidth),
		)
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", innerWidth) + "┐\n")
	for _, row := range rows {
		if opts.TrueColor {
			row = paint(row, fg, bg)
		}
		b.WriteString("│" + row + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", innerWidth) + "┘\n")

	return b.String()
}

// Table lists cards one per line in the order given by ids. Lines are cut
// to width, which is raised to a sensible minimum.
func Table(cards map[string]*card.CardListItem, ids []string, width int, colorize bool) string {
	if width < minWidth {
		width = minWidth
	}

	redSuit := color.New(color.FgRed)
	idColor := color.New(color.FgHiWhite)
	if colorize {
		redSuit.EnableColor()
		idColor.EnableColor()
	} else {
		redSuit.DisableColor()
		idColor.DisableColor()
	}

	var b strings.Builder
	for _, id := range ids {
		c, ok := cards[id]
		if !ok || c == nil {
			continue
		}

		glyph := c.Suit.Symbol()
		if c.Suit.Red() {
			glyph = redSuit.Sprint(glyph)
		}

		var flags []string
		if c.IsAvailable {
			flags = append(flags, "available")
		}
		if c.IsMoved {
			flags = append(flags, "moved")
		}
		if c.Bound() {
			flags = append(flags, "bound")
		}

		line := fmt.Sprintf("%s %s %s %s %s",
			idColor.Sprint(fit(id, idWidth)),
			glyph,
			fit(c.Value, valueWidth),
			fit(string(c.Mode), modeWidth),
			truncate(strings.Join(flags, ","), width-fixedWidth),
		)
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	return b.String()
}

// paint wraps s in 24-bit foreground and background escapes
func paint(s string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, s)
}

func padRight(s string, n int) string {
	if w := len([]rune(s)); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// fit cuts or pads s to exactly n runes
func fit(s string, n int) string {
	return padRight(truncate(s, n), n)
}

func padLeft(s string, n int) string {
	if w := len([]rune(s)); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}

func center(s string, n int) string {
	w := len([]rune(s))
	if w >= n {
		return s
	}
	left := (n - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-w-left)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
