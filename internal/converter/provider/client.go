package provider

import (
	"context"
	"github.com/langowen/converter/internal/converter/adapter/api_client/exchangerate_api"
)

type HTTPClient interface {
	ApiClient(ctx context.Context, url string) (*exchangerate_api.Response, error)
}
