package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when a card identifier does not follow the <value>-<suit> convention
var ErrInvalidID = errors.New("invalid card ID")

// Suit is a card suit as understood by the table view
type Suit string

const (
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
)

// Suits returns every known suit in canonical order
func Suits() []Suit {
	return []Suit{Clubs, Hearts, Spades, Diamonds}
}

// Valid reports whether s is one of the known suits
func (s Suit) Valid() bool {
	switch s {
	case Clubs, Hearts, Spades, Diamonds:
		return true
	}
	return false
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Symbol returns the glyph used to draw the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	default:
		return "•"
	}
}

// Mode is the visual presentation of a card
type Mode string

const (
	ModeShirt Mode = "shirt" // face-down, back showing
	ModeFace  Mode = "face"
)

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeShirt || m == ModeFace
}

// ElementRef is an opaque handle to the UI element a card is drawn into.
// It is bound by the consumer; cards are created without one.
type ElementRef struct {
	Selector string `toml:"selector"`
}

// CardListItem represents one card's display and interaction state.
// ID follows the <value>-<suit> convention and equals the key the card is
// stored under. Ref stays nil until the consumer binds an element.
type CardListItem struct {
	ID          string      `toml:"id"`
	Ref         *ElementRef `toml:"ref,omitempty"`
	Suit        Suit        `toml:"suit"`
	Value       string      `toml:"value"`
	Mode        Mode        `toml:"mode"`
	IsAvailable bool        `toml:"is_available"`
	IsMoved     bool        `toml:"is_moved"`
}

// Bound reports whether a UI element handle has been bound to the card
func (c *CardListItem) Bound() bool {
	return c.Ref != nil
}

func (c *CardListItem) String() string {
	return fmt.Sprintf("%s of %s", c.Value, c.Suit)
}

// MakeID builds a card identifier from its value and suit
func MakeID(value string, suit Suit) string {
	return value + "-" + string(suit)
}

// ParseID splits a card identifier into its value and suit
func ParseID(id string) (string, Suit, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q has no suit separator", ErrInvalidID, id)
	}

	value, suit := id[:i], Suit(id[i+1:])
	if value == "" {
		return "", "", fmt.Errorf("%w: %q has no value", ErrInvalidID, id)
	}
	if !suit.Valid() {
		return "", "", fmt.Errorf("%w: unknown suit %q", ErrInvalidID, suit)
	}

	return value, suit, nil
}
