package entities

import "errors"

var (
	ErrMissingAPIKey   = errors.New("api key is not configured")
	ErrFetchRates      = errors.New("failed to fetch exchange rates")
	ErrMissingRate     = errors.New("rate not found")
	ErrInvalidRate     = errors.New("rate must be positive")
	ErrBaseMismatch    = errors.New("rates are for another base currency")
	ErrUnsupportedPair = errors.New("unsupported currency pair")
	ErrInvalidChoice   = errors.New("invalid menu choice")
	ErrInvalidAmount   = errors.New("invalid amount")
)
