// Package services contains application services for the sn client.
// CardService runs the single "create card" flow: read content, get a
// token, build the payload and submit it.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sn/internal/client/client"
	"github.com/dmitrijs2005/sn/internal/client/markdown"
	"github.com/dmitrijs2005/sn/internal/client/models"
	"github.com/dmitrijs2005/sn/internal/logging"
	"github.com/dmitrijs2005/sn/internal/secret"
)

var ErrCreateCard = errors.New("error creating card")

// ContentReader resolves card content from a file path, or from stdin when
// the path is empty.
type ContentReader interface {
	Read(path string) (string, error)
}

// Credentials identify the user against the login endpoint.
type Credentials struct {
	Username string
	Password secret.String
}

// CreateCardRequest describes one card to create. An empty File means stdin.
type CreateCardRequest struct {
	Name string
	File string
}

// CardService creates cards.
//
// Contract:
//   - Create: read content, authenticate, build the payload and submit it,
//     in that order. The first failure aborts and is returned wrapped in
//     ErrCreateCard; nothing is retried.
type CardService interface {
	Create(ctx context.Context, req CreateCardRequest) (*client.CardResponse, error)
}

type cardService struct {
	client  client.Client
	content ContentReader
	render  markdown.Renderer
	creds   Credentials
	log     logging.Logger
}

// NewCardService constructs a CardService. A nil render uses markdown.Render
// and a nil log discards output.
func NewCardService(c client.Client, content ContentReader, creds Credentials, render markdown.Renderer, log logging.Logger) CardService {
	if render == nil {
		render = markdown.Render
	}
	if log == nil {
		log = logging.Nop()
	}
	return &cardService{client: c, content: content, render: render, creds: creds, log: log}
}

func (s *cardService) Create(ctx context.Context, req CreateCardRequest) (*client.CardResponse, error) {
	log := s.log.With("card", req.Name)

	markup, err := s.content.Read(req.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCard, err)
	}
	log.Debug(ctx, "content read", "source", source(req.File), "bytes", len(markup))

	token, err := s.client.Token(ctx, s.creds.Username, s.creds.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCard, err)
	}
	log.Debug(ctx, "authenticated", "username", s.creds.Username)

	payload := models.NewCardPayload(req.Name, markup, s.render)
	log.Debug(ctx, "payload built", "envelope_id", payload.ID, "card_id", payload.Card.ID)

	resp, err := s.client.CreateCard(ctx, token, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateCard, err)
	}
	log.Info(ctx, "card created", "card_id", payload.Card.ID, "status", resp.StatusCode)

	return resp, nil
}

func source(file string) string {
	if file == "" {
		return "stdin"
	}
	return file
}
