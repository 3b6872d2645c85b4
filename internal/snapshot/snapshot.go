package snapshot

import (
	"sort"

	"github.com/arcanaland/cardtable/internal/card"
)

// order is the declaration order of the initial snapshot
var order = []string{"A-clubs", "10-hearts", "D-spades"}

// InitialCards returns the cards a table starts with, keyed by card ID.
// Every call builds new records, so callers may mutate the result freely;
// a later call (e.g. on reset) is unaffected.
func InitialCards() map[string]*card.CardListItem {
	cards := []struct {
		value string
		suit  card.Suit
	}{
		{"A", card.Clubs},
		{"10", card.Hearts},
		{"D", card.Spades},
	}

	result := make(map[string]*card.CardListItem, len(cards))
	for _, c := range cards {
		id := card.MakeID(c.value, c.suit)
		result[id] = &card.CardListItem{
			ID:          id,
			Suit:        c.suit,
			Value:       c.value,
			Mode:        card.ModeShirt,
			IsAvailable: true,
			IsMoved:     false,
		}
	}

	return result
}

// IDs returns the keys of cards in snapshot order. Keys that are not part
// of the initial snapshot follow in lexical order.
func IDs(cards map[string]*card.CardListItem) []string {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i
	}

	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		ri, iKnown := rank[ids[i]]
		rj, jKnown := rank[ids[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return ids[i] < ids[j]
		}
	})

	return ids
}
