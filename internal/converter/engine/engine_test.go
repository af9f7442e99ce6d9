package engine

import (
	"github.com/langowen/converter/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testRates() *entities.Rates {
	return entities.NewRates("JPY", map[entities.Currency]float64{
		"KRW": 9.123,
		"SGD": 0.0091,
	})
}

func TestConverter_Convert(t *testing.T) {
	c := NewConverter("JPY")

	type args struct {
		amount entities.Amount
		from   entities.Currency
		to     entities.Currency
	}
	tests := []struct {
		name    string
		args    args
		want    entities.Amount
		wantErr error
	}{
		{
			"jpy -> krw",
			args{1000, "JPY", "KRW"},
			9123,
			nil,
		},
		{
			"jpy -> sgd",
			args{1000, "JPY", "SGD"},
			9.1,
			nil,
		},
		{
			"krw -> jpy",
			args{9123, "KRW", "JPY"},
			1000,
			nil,
		},
		{
			"sgd -> jpy",
			args{1000, "SGD", "JPY"},
			109890.10989010989,
			nil,
		},
		{
			"krw -> sgd",
			args{1000, "KRW", "SGD"},
			0,
			entities.ErrUnsupportedPair,
		},
		{
			"jpy -> usd",
			args{1000, "JPY", "USD"},
			0,
			entities.ErrMissingRate,
		},
		{
			"usd -> jpy",
			args{1000, "USD", "JPY"},
			0,
			entities.ErrMissingRate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.args.amount, tt.args.from, tt.args.to, testRates())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), float64(got), 1e-6)
		})
	}
}

func TestConverter_ConvertMatchesRate(t *testing.T) {
	c := NewConverter("JPY")

	for _, rate := range []float64{0.0001, 0.0091, 1, 9.123, 1500.5} {
		for _, amount := range []entities.Amount{0.01, 1, 42, 1e6} {
			rates := entities.NewRates("JPY", map[entities.Currency]float64{"XXX": rate})

			out, err := c.Convert(amount, "JPY", "XXX", rates)
			require.NoError(t, err)
			assert.Equal(t, float64(amount)*rate, float64(out))

			in, err := c.Convert(amount, "XXX", "JPY", rates)
			require.NoError(t, err)
			assert.Equal(t, float64(amount)/rate, float64(in))

			back, err := c.Convert(out, "XXX", "JPY", rates)
			require.NoError(t, err)
			assert.InEpsilon(t, float64(amount), float64(back), 1e-9)
		}
	}
}

func TestConverter_ConvertRejectsNonPositiveRate(t *testing.T) {
	c := NewConverter("JPY")
	rates := entities.NewRates("JPY", map[entities.Currency]float64{"KRW": 0, "SGD": -2})

	_, err := c.Convert(1000, "KRW", "JPY", rates)
	assert.ErrorIs(t, err, entities.ErrInvalidRate)

	_, err = c.Convert(1000, "JPY", "SGD", rates)
	assert.ErrorIs(t, err, entities.ErrInvalidRate)
}

func TestConverter_ConvertNilRates(t *testing.T) {
	_, err := NewConverter("JPY").Convert(1, "JPY", "KRW", nil)
	assert.ErrorIs(t, err, entities.ErrMissingRate)
}
