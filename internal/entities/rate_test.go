package entities

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestNewRates_CopiesInput(t *testing.T) {
	raw := map[Currency]float64{"KRW": 9.123, "SGD": 0.0091}
	rates := NewRates("JPY", raw)

	raw["KRW"] = 1
	delete(raw, "SGD")

	krw, ok := rates.Rate("KRW")
	assert.True(t, ok)
	assert.Equal(t, 9.123, krw)
	assert.Equal(t, 2, rates.Len())
	assert.Equal(t, Currency("JPY"), rates.Base())
	assert.Equal(t, []Currency{"KRW", "SGD"}, rates.Codes())

	_, ok = rates.Rate("USD")
	assert.False(t, ok)
}

func TestAmount_Valid(t *testing.T) {
	assert.True(t, Amount(0.01).Valid())
	assert.True(t, Amount(1e12).Valid())
	assert.False(t, Amount(0).Valid())
	assert.False(t, Amount(-5).Valid())
	assert.False(t, Amount(math.NaN()).Valid())
	assert.False(t, Amount(math.Inf(1)).Valid())
}

func TestPair_ValidFor(t *testing.T) {
	assert.True(t, Pair{From: "JPY", To: "KRW"}.ValidFor("JPY"))
	assert.True(t, Pair{From: "SGD", To: "JPY"}.ValidFor("JPY"))
	assert.False(t, Pair{From: "KRW", To: "SGD"}.ValidFor("JPY"))
	assert.False(t, Pair{From: "JPY", To: "JPY"}.ValidFor("JPY"))
	assert.Equal(t, "JPY->KRW", Pair{From: "JPY", To: "KRW"}.String())
}
