package engine

import (
	"fmt"
	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
)

// Converter converts between the base currency and one other currency.
type Converter struct {
	base entities.Currency
}

func NewConverter(base entities.Currency) *Converter {
	return &Converter{base: base}
}

func (c *Converter) Base() entities.Currency {
	return c.base
}

// Convert multiplies when converting out of the base currency and divides
// when converting into it. No rounding is applied.
func (c *Converter) Convert(amount entities.Amount, from, to entities.Currency, rates *entities.Rates) (entities.Amount, error) {
	const op = "engine.Convert"

	switch {
	case from == c.base:
		rate, err := lookup(rates, to)
		if err != nil {
			return 0, errors.Wrap(err, op)
		}
		return entities.Amount(float64(amount) * rate), nil

	case to == c.base:
		rate, err := lookup(rates, from)
		if err != nil {
			return 0, errors.Wrap(err, op)
		}
		return entities.Amount(float64(amount) / rate), nil

	default:
		return 0, errors.Wrap(fmt.Errorf("%w: %s -> %s", entities.ErrUnsupportedPair, from, to), op)
	}
}

func lookup(rates *entities.Rates, currency entities.Currency) (float64, error) {
	if rates == nil {
		return 0, fmt.Errorf("%w: %s", entities.ErrMissingRate, currency)
	}

	rate, ok := rates.Rate(currency)
	if !ok {
		return 0, fmt.Errorf("%w: %s", entities.ErrMissingRate, currency)
	}

	if !(rate > 0) {
		return 0, fmt.Errorf("%w: %s=%v", entities.ErrInvalidRate, currency, rate)
	}

	return rate, nil
}
