package render

import (
	"strings"
	"testing"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/snapshot"
)

func TestCardShirtHidesFace(t *testing.T) {
	c := snapshot.InitialCards()["A-clubs"]

	for _, opts := range []Options{{}, {TrueColor: true}} {
		out := Card(c, opts)
		if strings.Contains(out, "A") || strings.Contains(out, card.Clubs.Symbol()) {
			t.Errorf("shirt card reveals its face:\n%s", out)
		}
		if got := strings.Count(out, "\n"); got != 5 {
			t.Errorf("expected 5 lines, got %d", got)
		}
	}
}

func TestCardFace(t *testing.T) {
	c := snapshot.InitialCards()["10-hearts"]
	c.Mode = card.ModeFace

	out := Card(c, Options{})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if lines[1] != "│10     │" {
		t.Errorf("top row = %q", lines[1])
	}
	if lines[2] != "│   ♥   │" {
		t.Errorf("middle row = %q", lines[2])
	}
	if lines[3] != "│     10│" {
		t.Errorf("bottom row = %q", lines[3])
	}

	colored := Card(c, Options{TrueColor: true})
	if !strings.Contains(colored, "\x1b[38;2;") || !strings.Contains(colored, "\x1b[0m") {
		t.Errorf("expected true colour escapes in %q", colored)
	}
}

func TestTable(t *testing.T) {
	cards := snapshot.InitialCards()
	out := Table(cards, snapshot.IDs(cards), 80, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	for i, id := range []string{"A-clubs", "10-hearts", "D-spades"} {
		if !strings.HasPrefix(lines[i], id) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], id)
		}
		if !strings.Contains(lines[i], "shirt") || !strings.HasSuffix(lines[i], "available") {
			t.Errorf("line %d = %q", i, lines[i])
		}
		if strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d contains escapes with colour disabled", i)
		}
	}
}

func TestTableNarrow(t *testing.T) {
	cards := snapshot.InitialCards()
	cards["A-clubs"].IsMoved = true
	cards["A-clubs"].Ref = &card.ElementRef{Selector: "#a"}

	out := Table(cards, []string{"A-clubs", "missing"}, 10, false)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", out)
	}
	if got := len([]rune(strings.TrimSuffix(out, "\n"))); got > minWidth {
		t.Errorf("line width %d exceeds %d", got, minWidth)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "…") {
		t.Errorf("expected truncated flags, got %q", out)
	}
}

func TestTableLongColumns(t *testing.T) {
	id := "Joker-long-identifier-hearts"
	cards := map[string]*card.CardListItem{
		id: {
			ID:          id,
			Suit:        card.Hearts,
			Value:       "Joker-long",
			Mode:        card.ModeShirt,
			IsAvailable: true,
			IsMoved:     true,
		},
	}

	line := strings.TrimSuffix(Table(cards, []string{id}, 40, false), "\n")
	if got := len([]rune(line)); got > minWidth {
		t.Errorf("line width %d exceeds %d: %q", got, minWidth, line)
	}

	fields := strings.Fields(line)
	if len(fields) != 5 {
		t.Fatalf("expected 5 separated columns, got %d: %q", len(fields), line)
	}
	if fields[0] != "Joker-long-…" {
		t.Errorf("id column = %q", fields[0])
	}
	if fields[2] != "Jok…" {
		t.Errorf("value column = %q", fields[2])
	}
	if fields[3] != "shirt" {
		t.Errorf("mode column = %q", fields[3])
	}
}

func TestCardFaceLongValue(t *testing.T) {
	c := &card.CardListItem{ID: "Joker-long-hearts", Suit: card.Hearts, Value: "Joker-long", Mode: card.ModeFace}

	out := Card(c, Options{})
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if got := len([]rune(line)); got != innerWidth+2 {
			t.Errorf("line %d is %d runes wide: %q", i, got, line)
		}
	}
	if !strings.Contains(out, "│Joker-…│") {
		t.Errorf("expected a truncated value:\n%s", out)
	}
}
