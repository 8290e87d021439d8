// Package client talks to the notes REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Token
//     exchanges a username and password for a bearer token, CreateCard
//     posts a card payload with that token.
//  2. A concrete net/http implementation (see HTTPClient). The token
//     request is an OAuth2 resource-owner password grant made with
//     golang.org/x/oauth2 against "<base>user/login"; cards are posted as
//     JSON to "<base>cards/" through an oauth2.Transport that sets the
//     Authorization header.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers can match with
// errors.Is: ErrAuth for anything that goes wrong while getting a token,
// ErrUnexpectedStatus for a non-2xx card response, ErrUnauthorized when the
// API rejects the token and ErrUnavailable for timeouts and refused
// connections.
//
// Credentials and tokens are carried as secret.String and never appear in
// logs or error messages.
package client
