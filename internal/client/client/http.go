package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/dmitrijs2005/sn/internal/logging"
	"github.com/dmitrijs2005/sn/internal/netx"
)

const (
	loginPath = "user/login"
	cardsPath = "cards/"

	// The password grant never redirects a browser, so the client id and
	// authorization URL are placeholders the API ignores.
	oauthClientID = "unused"
	oauthAuthURL  = "http://127.0.0.1/unused"

	DefaultTimeout = 30 * time.Second
)

// Config configures an HTTPClient.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.supernotes.app/v1/".
	// A missing trailing slash is added.
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the underlying client; its Timeout is replaced
	// by Timeout.
	HTTPClient *http.Client

	Logger logging.Logger
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	base, err := netx.ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := &http.Client{}
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		hc = &c
	}
	hc.Timeout = timeout

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &HTTPClient{baseURL: base, http: hc, log: log}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return netx.Resolve(c.baseURL, path)
}

// mapError classifies transport failures and auth rejections.
func mapError(err error) error {
	var se *netx.StatusError
	if errors.As(err, &se) &&
		(se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		(errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
