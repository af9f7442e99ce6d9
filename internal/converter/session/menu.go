package session

import (
	"fmt"
	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
)

const ExitChoice = "0"

type MenuEntry struct {
	Key   string
	Label string
	Pair  entities.Pair
}

// DefaultEntries is the fixed menu, all pairs share the JPY base.
func DefaultEntries() []MenuEntry {
	return []MenuEntry{
		{Key: "1", Label: "Yen → Won", Pair: entities.Pair{From: "JPY", To: "KRW"}},
		{Key: "2", Label: "Yen → Singapore dollar", Pair: entities.Pair{From: "JPY", To: "SGD"}},
		{Key: "3", Label: "Won → Yen", Pair: entities.Pair{From: "KRW", To: "JPY"}},
		{Key: "4", Label: "Singapore dollar → Yen", Pair: entities.Pair{From: "SGD", To: "JPY"}},
	}
}

type Menu struct {
	base    entities.Currency
	entries []MenuEntry
	byKey   map[string]entities.Pair
}

// NewMenu rejects entries whose pair does not have base as exactly one side,
// duplicate keys and entries that reuse the exit key.
func NewMenu(base entities.Currency, entries []MenuEntry) (*Menu, error) {
	const op = "session.NewMenu"

	byKey := make(map[string]entities.Pair, len(entries))
	for _, entry := range entries {
		if entry.Key == ExitChoice {
			return nil, fmt.Errorf("%s: key %q is reserved for exit", op, entry.Key)
		}
		if _, ok := byKey[entry.Key]; ok {
			return nil, fmt.Errorf("%s: duplicate key %q", op, entry.Key)
		}
		if !entry.Pair.ValidFor(base) {
			return nil, errors.Wrap(fmt.Errorf("%w: %s with base %s", entities.ErrUnsupportedPair, entry.Pair, base), op)
		}
		byKey[entry.Key] = entry.Pair
	}

	copied := make([]MenuEntry, len(entries))
	copy(copied, entries)

	return &Menu{
		base:    base,
		entries: copied,
		byKey:   byKey,
	}, nil
}

func (m *Menu) Entries() []MenuEntry {
	entries := make([]MenuEntry, len(m.entries))
	copy(entries, m.entries)
	return entries
}

func (m *Menu) Lookup(key string) (entities.Pair, bool) {
	pair, ok := m.byKey[key]
	return pair, ok
}

// Currencies lists the non-base currencies referenced by the menu, in menu order.
func (m *Menu) Currencies() []entities.Currency {
	seen := make(map[entities.Currency]bool)
	var currencies []entities.Currency

	for _, entry := range m.entries {
		for _, c := range []entities.Currency{entry.Pair.From, entry.Pair.To} {
			if c == m.base || seen[c] {
				continue
			}
			seen[c] = true
			currencies = append(currencies, c)
		}
	}

	return currencies
}
