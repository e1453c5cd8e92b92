package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// ErrCredentialUnavailable is returned when no usable access token exists
// for an ad account.
var ErrCredentialUnavailable = errors.New("credential unavailable")

// TokenProvider returns access tokens for ad accounts. Acquiring and
// refreshing tokens happens elsewhere.
type TokenProvider interface {
	Token(ctx context.Context, adAccountID uuid.UUID) (*oauth2.Token, error)
}
