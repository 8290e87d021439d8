// Package models defines the card resource sent to the notes API.
package models

import (
	"github.com/dmitrijs2005/sn/internal/client/markdown"
	"github.com/google/uuid"
)

// Card is the note resource: a name, its Markdown source and the rendered HTML.
type Card struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Markup string    `json:"markup"`
	HTML   string    `json:"html"`
}

// CardPayload is the request body of the card creation endpoint. ID is the
// envelope id and is unrelated to Card.ID.
type CardPayload struct {
	ID   uuid.UUID `json:"id"`
	Card Card      `json:"card"`
}

// NewCardPayload builds a payload for a new card. Both ids are fresh random
// (v4) UUIDs and render is called exactly once on markup.
func NewCardPayload(name, markup string, render markdown.Renderer) CardPayload {
	return CardPayload{
		ID: uuid.New(),
		Card: Card{
			ID:     uuid.New(),
			Name:   name,
			Markup: markup,
			HTML:   render(markup),
		},
	}
}
