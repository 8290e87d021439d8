package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/dmitrijs2005/sn/internal/client/models"
	"github.com/dmitrijs2005/sn/internal/netx"
)

// CreateCard posts payload to "<base>cards/" with token as a bearer
// credential. Any non-2xx answer is an error matching ErrUnexpectedStatus.
func (c *HTTPClient) CreateCard(ctx context.Context, token *AccessToken, payload models.CardPayload) (*CardResponse, error) {
	endpoint := c.endpoint(cardsPath)

	req, err := netx.NewJSONRequest(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	hc := &http.Client{
		Timeout: c.http.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: token.Value.Reveal(),
				TokenType:   "Bearer",
			}),
			Base: c.http.Transport,
		},
	}

	c.log.Debug(ctx, "submitting card", "endpoint", endpoint, "envelope_id", payload.ID, "card_id", payload.Card.ID)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", mapError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if err := netx.CheckStatus(resp, body); err != nil {
		return nil, mapError(err)
	}

	c.log.Debug(ctx, "card submitted", "status", resp.StatusCode)
	return &CardResponse{StatusCode: resp.StatusCode, Body: body}, nil
}
