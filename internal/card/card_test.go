package card

import (
	"errors"
	"testing"
)

func TestMakeAndParseID(t *testing.T) {
	for _, s := range Suits() {
		for _, v := range []string{"A", "10", "D"} {
			id := MakeID(v, s)
			value, suit, err := ParseID(id)
			if err != nil {
				t.Fatalf("ParseID(%q): unexpected error %v", id, err)
			}
			if value != v || suit != s {
				t.Errorf("ParseID(%q) = %q, %q; want %q, %q", id, value, suit, v, s)
			}
		}
	}
}

func TestParseIDInvalid(t *testing.T) {
	tests := []string{"", "Aclubs", "-clubs", "A-cups", "A-"}
	for _, id := range tests {
		if _, _, err := ParseID(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q): expected ErrInvalidID, got %v", id, err)
		}
	}
}

func TestSuit(t *testing.T) {
	if Suit("cups").Valid() {
		t.Error("cups should not be a valid suit")
	}
	if !Hearts.Red() || !Diamonds.Red() || Clubs.Red() || Spades.Red() {
		t.Error("unexpected suit colours")
	}
	if got := Suit("cups").Symbol(); got != "•" {
		t.Errorf("unknown suit symbol = %q", got)
	}
	if got := Spades.Symbol(); got != "♠" {
		t.Errorf("spades symbol = %q", got)
	}
}

func TestMode(t *testing.T) {
	if !ModeShirt.Valid() || !ModeFace.Valid() {
		t.Error("known modes should be valid")
	}
	if Mode("sideways").Valid() {
		t.Error("sideways should not be a valid mode")
	}
}

func TestCardListItemBound(t *testing.T) {
	c := &CardListItem{ID: "A-clubs", Suit: Clubs, Value: "A"}
	if c.Bound() {
		t.Fatal("new card should not be bound")
	}
	c.Ref = &ElementRef{Selector: "#card-A-clubs"}
	if !c.Bound() {
		t.Fatal("card should be bound after setting Ref")
	}
	if got := c.String(); got != "A of clubs" {
		t.Errorf("String() = %q", got)
	}
}
