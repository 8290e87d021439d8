package client

import (
	"errors"

	"github.com/dmitrijs2005/sn/internal/netx"
)

var (
	ErrAuth             = errors.New("error getting access token")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnexpectedStatus = netx.ErrUnexpectedStatus
)
