package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/dmitrijs2005/sn/internal/secret"
)

// Token performs the OAuth2 password grant against "<base>user/login". The
// form body is exactly grant_type, username and password, in that order; the
// placeholder client id travels in the basic-auth header.
func (c *HTTPClient) Token(ctx context.Context, username string, password secret.String) (*AccessToken, error) {
	endpoint := c.endpoint(loginPath)

	conf := &oauth2.Config{
		ClientID: oauthClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:   oauthAuthURL,
			TokenURL:  endpoint,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	c.log.Debug(ctx, "requesting access token", "endpoint", endpoint, "username", username)

	hc := &http.Client{
		Timeout:   c.http.Timeout,
		Transport: &loginFormTransport{base: c.http.Transport},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, hc)
	tok, err := conf.PasswordCredentialsToken(ctx, username, password.Reveal())
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil &&
			(re.Response.StatusCode == http.StatusUnauthorized || re.Response.StatusCode == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: %w: %w", ErrAuth, ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrAuth, mapError(err))
	}

	at := &AccessToken{
		Value:  secret.New(tok.AccessToken),
		Type:   tok.Type(),
		Expiry: tok.Expiry,
	}
	if at.Expiry.IsZero() {
		at.Expiry = jwtExpiry(tok.AccessToken)
	}

	c.log.Debug(ctx, "access token acquired", "token_type", at.Type, "expires_at", at.Expiry)
	return at, nil
}

// jwtExpiry reads the exp claim of a JWT access token without verifying its
// signature; the token is opaque to us and only the expiry is reported. A
// token that is not a JWT yields the zero time.
func jwtExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
