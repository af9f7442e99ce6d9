package provider

import (
	"context"
	"fmt"
	"github.com/langowen/converter/internal/entities"
	"github.com/pkg/errors"
	"math"
	"net/url"
	"strings"
)

// Service fetches the rate mapping for the base currency.
type Service interface {
	FetchRates(ctx context.Context, apiKey string) (*entities.Rates, error)
}

type Provider struct {
	httpClient HTTPClient
	baseURL    string
	base       entities.Currency
	required   []entities.Currency
}

// NewProvider builds a provider for base. Every currency in required must be
// present and positive in a successful response.
func NewProvider(client HTTPClient, baseURL string, base entities.Currency, required []entities.Currency) *Provider {
	return &Provider{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		base:       base,
		required:   required,
	}
}

// FetchRates performs one request, without retries. Every failure wraps
// entities.ErrFetchRates, except a missing key which is entities.ErrMissingAPIKey.
func (p *Provider) FetchRates(ctx context.Context, apiKey string) (*entities.Rates, error) {
	const op = "provider.FetchRates"

	if apiKey == "" {
		return nil, errors.Wrap(entities.ErrMissingAPIKey, op)
	}

	resp, err := p.httpClient.ApiClient(ctx, p.getUrl(apiKey))
	if err != nil {
		return nil, errors.Wrap(fetchError(err), op)
	}

	if got := entities.Currency(resp.BaseCode); got != p.base {
		return nil, errors.Wrap(fetchError(fmt.Errorf("%w: got %q, want %s", entities.ErrBaseMismatch, got, p.base)), op)
	}

	values := make(map[entities.Currency]float64, len(resp.ConversionRates))
	for code, value := range resp.ConversionRates {
		values[entities.Currency(code)] = value
	}

	for _, code := range p.required {
		value, ok := values[code]
		if !ok {
			return nil, errors.Wrap(fetchError(fmt.Errorf("%w: %s", entities.ErrMissingRate, code)), op)
		}
		if !(value > 0) || math.IsInf(value, 0) {
			return nil, errors.Wrap(fetchError(fmt.Errorf("%w: %s=%v", entities.ErrInvalidRate, code, value)), op)
		}
	}

	return entities.NewRates(p.base, values), nil
}

func (p *Provider) getUrl(apiKey string) string {
	return fmt.Sprintf("%s/%s/latest/%s", p.baseURL, url.PathEscape(apiKey), p.base)
}

// fetchError keeps err in the chain and marks it as a fetch failure.
func fetchError(err error) error {
	return fmt.Errorf("%w: %w", entities.ErrFetchRates, err)
}
