package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sn/internal/client/models"
	"github.com/dmitrijs2005/sn/internal/secret"
)

type Client interface {
	Token(ctx context.Context, username string, password secret.String) (*AccessToken, error)
	CreateCard(ctx context.Context, token *AccessToken, payload models.CardPayload) (*CardResponse, error)
}

// AccessToken is a bearer token issued by the login endpoint.
type AccessToken struct {
	Value  secret.String
	Type   string
	Expiry time.Time // zero when the server did not say
}

// CardResponse is the raw answer of the card creation endpoint.
type CardResponse struct {
	StatusCode int
	Body       []byte
}
