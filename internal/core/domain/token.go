package domain

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenSigning = errors.New("token signing secret not configured")
var ErrRateLimited = errors.New("too many token requests")
