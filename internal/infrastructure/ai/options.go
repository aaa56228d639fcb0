package ai

import (
	"net/http"
	"time"
)

// Option ajusta un adaptador (endpoint y cliente HTTP; los tests apuntan a httptest).
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL reemplaza la URL base del proveedor.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

func buildOptions(baseURL string, opts []Option) clientOptions {
	o := clientOptions{
		baseURL: baseURL,
		// timeout de red; el use case impone además su context.WithTimeout
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
