package session

import (
	"github.com/langowen/converter/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewMenu_Default(t *testing.T) {
	menu, err := NewMenu("JPY", DefaultEntries())
	require.NoError(t, err)

	for _, entry := range menu.Entries() {
		assert.True(t, entry.Pair.ValidFor("JPY"), entry.Pair.String())
	}

	pair, ok := menu.Lookup("3")
	assert.True(t, ok)
	assert.Equal(t, entities.Pair{From: "KRW", To: "JPY"}, pair)

	_, ok = menu.Lookup("5")
	assert.False(t, ok)

	_, ok = menu.Lookup(ExitChoice)
	assert.False(t, ok)

	assert.Equal(t, []entities.Currency{"KRW", "SGD"}, menu.Currencies())
}

func TestNewMenu_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []MenuEntry
	}{
		{"cross pair", []MenuEntry{{Key: "1", Pair: entities.Pair{From: "KRW", To: "SGD"}}}},
		{"base to base", []MenuEntry{{Key: "1", Pair: entities.Pair{From: "JPY", To: "JPY"}}}},
		{"exit key", []MenuEntry{{Key: "0", Pair: entities.Pair{From: "JPY", To: "KRW"}}}},
		{"duplicate key", []MenuEntry{
			{Key: "1", Pair: entities.Pair{From: "JPY", To: "KRW"}},
			{Key: "1", Pair: entities.Pair{From: "KRW", To: "JPY"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMenu("JPY", tt.entries)
			assert.Error(t, err)
		})
	}
}

func TestNewMenu_CrossPairIsUnsupported(t *testing.T) {
	_, err := NewMenu("JPY", []MenuEntry{{Key: "1", Pair: entities.Pair{From: "KRW", To: "SGD"}}})
	assert.ErrorIs(t, err, entities.ErrUnsupportedPair)
}

func TestMenu_EntriesIsACopy(t *testing.T) {
	menu, err := NewMenu("JPY", DefaultEntries())
	require.NoError(t, err)

	entries := menu.Entries()
	entries[0].Pair = entities.Pair{From: "KRW", To: "SGD"}

	assert.Equal(t, entities.Pair{From: "JPY", To: "KRW"}, menu.Entries()[0].Pair)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting_menu_choice", AwaitingMenuChoice.String())
	assert.Equal(t, "awaiting_amount", AwaitingAmount.String())
	assert.Equal(t, "displaying", Displaying.String())
	assert.Equal(t, "exited", Exited.String())
	assert.Equal(t, "unknown", State(42).String())
}
