package validator

import (
	"fmt"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/snapshot"
)

// canonicalRanks is the usual French-suited rank set. Values outside it
// (such as the literal D some decks use for a face card) are kept but flagged.
var canonicalRanks = map[string]bool{
	"A": true, "2": true, "3": true, "4": true, "5": true, "6": true, "7": true,
	"8": true, "9": true, "10": true, "J": true, "Q": true, "K": true,
}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   map[string]*card.CardListItem
	Results ValidationResults
}

func NewValidator(cards map[string]*card.CardListItem) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// Validate checks every card against the snapshot invariants. Cards are
// visited in snapshot order so results are stable. Results from an
// earlier run are discarded.
func (v *Validator) Validate() (ValidationResults, error) {
	v.Results = ValidationResults{}

	if v.Cards == nil {
		return v.Results, fmt.Errorf("no cards to validate")
	}

	for _, key := range snapshot.IDs(v.Cards) {
		c := v.Cards[key]
		if c == nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: card is nil", key))
			continue
		}

		v.validateIdentity(key, c)
		v.validateEnums(key, c)
		v.validateInitialState(key, c)
		v.validateRank(key, c)
	}

	return v.Results, nil
}

// validateIdentity checks the key, the id and the <value>-<suit> convention agree
func (v *Validator) validateIdentity(key string, c *card.CardListItem) {
	if c.ID != key {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: stored under a key that differs from its id %q", key, c.ID))
	}

	if want := card.MakeID(c.Value, c.Suit); c.ID != want {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: id does not match value and suit (expected %q)", key, want))
	}
}

func (v *Validator) validateEnums(key string, c *card.CardListItem) {
	if !c.Suit.Valid() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: unknown suit %q", key, c.Suit))
	}

	if !c.Mode.Valid() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: unknown mode %q", key, c.Mode))
	}
}

func (v *Validator) validateInitialState(key string, c *card.CardListItem) {
	if c.Mode != card.ModeShirt {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: mode is %q, cards start as %q", key, c.Mode, card.ModeShirt))
	}

	if !c.IsAvailable {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: card is not available", key))
	}

	if c.IsMoved {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: card is already moved", key))
	}

	if c.Bound() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: element handle is already bound", key))
	}
}

func (v *Validator) validateRank(key string, c *card.CardListItem) {
	if c.Value == "" {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: value is empty", key))
		return
	}

	if !canonicalRanks[c.Value] {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: value %q is not a canonical rank", key, c.Value))
	}
}
