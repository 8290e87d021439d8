// Package netx holds small HTTP helpers shared by the API client.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrInvalidBaseURL   = errors.New("invalid base url")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status: %s", e.Status)
	}
	return fmt.Sprintf("unexpected status: %s; body: %s", e.Status, e.Body)
}

// Is lets errors.Is(err, ErrUnexpectedStatus) match any *StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// CheckStatus returns a *StatusError when resp is not 2xx. body is the
// already-read response body and is truncated in the error.
func CheckStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if len(body) > maxErrorBody {
		body = append(body[:maxErrorBody:maxErrorBody], "..."...)
	}
	return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(bytes.TrimSpace(body))}
}

// NewJSONRequest builds a request whose body is v encoded as JSON. HTML
// characters are left unescaped since card bodies carry HTML.
func NewJSONRequest(ctx context.Context, method, endpoint string, v any) (*http.Request, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Resolve joins a relative endpoint path onto base with URL reference
// semantics, so base must end with "/" for the path to be appended.
func Resolve(base *url.URL, path string) string {
	return base.ResolveReference(&url.URL{Path: path}).String()
}

// ParseBaseURL parses an absolute http(s) URL and makes sure its path ends
// with "/", so relative endpoints resolve below it instead of replacing its
// last segment.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidBaseURL, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, u.Scheme)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u, nil
}

// EncodeForm encodes v like url.Values.Encode, except that the keys named in
// order come first and in that order. The remaining keys follow sorted.
func EncodeForm(v url.Values, order ...string) string {
	var b strings.Builder
	seen := make(map[string]bool, len(order))

	write := func(k string) {
		for _, val := range v[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(val))
		}
	}

	for _, k := range order {
		if seen[k] {
			continue
		}
		seen[k] = true
		write(k)
	}

	rest := url.Values{}
	for k, vals := range v {
		if !seen[k] {
			rest[k] = vals
		}
	}
	if tail := rest.Encode(); tail != "" {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(tail)
	}
	return b.String()
}
