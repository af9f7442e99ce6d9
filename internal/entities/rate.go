package entities

import (
	"math"
	"sort"
)

// Currency a currency code, e.g. JPY
type Currency string

// Amount a monetary amount
type Amount float64

// Valid reports whether the amount is positive and finite.
func (a Amount) Valid() bool {
	f := float64(a)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Rates exchange rates relative to one unit of the base currency.
// The values are copied on construction and there are no mutators.
type Rates struct {
	base   Currency
	values map[Currency]float64
}

func NewRates(base Currency, values map[Currency]float64) *Rates {
	copied := make(map[Currency]float64, len(values))
	for code, value := range values {
		copied[code] = value
	}

	return &Rates{
		base:   base,
		values: copied,
	}
}

func (r *Rates) Base() Currency {
	return r.base
}

func (r *Rates) Rate(currency Currency) (float64, bool) {
	value, ok := r.values[currency]
	return value, ok
}

func (r *Rates) Len() int {
	return len(r.values)
}

// Codes returns the currency codes sorted alphabetically.
func (r *Rates) Codes() []Currency {
	codes := make([]Currency, 0, len(r.values))
	for code := range r.values {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}

// Pair a conversion direction
type Pair struct {
	From Currency
	To   Currency
}

// ValidFor reports whether exactly one side of the pair is the base currency.
func (p Pair) ValidFor(base Currency) bool {
	return (p.From == base) != (p.To == base)
}

func (p Pair) String() string {
	return string(p.From) + "->" + string(p.To)
}
