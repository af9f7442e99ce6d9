package exchangerate_api

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"net/url"
)

const resultSuccess = "success"

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{client: &http.Client{}}
}

// Response is the body of GET /<key>/latest/<base>.
type Response struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	TimeLastUpdate  int64              `json:"time_last_update_unix"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// ApiClient performs the GET. The URL carries the API key, so errors never
// include it.
func (c *HTTPClient) ApiClient(ctx context.Context, rawURL string) (*Response, error) {
	const op = "exchangerate_api.ApiClient"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(withoutURL(err), op+": create request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(withoutURL(err), op+": get")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, op+": read body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if errorType := errorTypeOf(body); errorType != "" {
			return nil, fmt.Errorf("%s: bad status: %s (%s)", op, resp.Status, errorType)
		}
		return nil, fmt.Errorf("%s: bad status: %s", op, resp.Status)
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, op+": json unmarshal")
	}

	if result.Result != resultSuccess {
		return nil, fmt.Errorf("%s: api error: %s", op, result.ErrorType)
	}

	if result.ConversionRates == nil {
		return nil, fmt.Errorf("%s: conversion_rates missing", op)
	}

	return &result, nil
}

func errorTypeOf(body []byte) string {
	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		return ""
	}
	return result.ErrorType
}

// withoutURL drops the *url.Error layer, whose message quotes the full URL.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
