package client

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/sn/internal/netx"
)

// loginFieldOrder is the field order of the password grant body. The login
// endpoint expects grant_type=password&username=...&password=... verbatim,
// while oauth2 sorts form keys alphabetically.
var loginFieldOrder = []string{"grant_type", "username", "password"}

// loginFormTransport rewrites url-encoded POST bodies into loginFieldOrder
// before handing the request to base.
type loginFormTransport struct {
	base http.RoundTripper
}

func (t *loginFormTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	mt, _, _ := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if req.Method != http.MethodPost || mt != "application/x-www-form-urlencoded" || req.Body == nil {
		return base.RoundTrip(req)
	}

	raw, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read login form: %w", err)
	}
	form, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse login form: %w", err)
	}
	body := []byte(netx.EncodeForm(form, loginFieldOrder...))

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	out.ContentLength = int64(len(body))

	return base.RoundTrip(out)
}
