package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/oauth2"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// AccountRepository resolves ad accounts and their stored access tokens.
// Tokens are written by the OAuth flow, which lives outside this service.
type AccountRepository struct {
	db DB
}

var (
	_ port.AccountRepository = (*AccountRepository)(nil)
	_ port.TokenProvider     = (*AccountRepository)(nil)
)

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAdAccount(ctx context.Context, id uuid.UUID) (*domain.AdAccount, error) {
	acct := &domain.AdAccount{ID: id}
	err := r.db.QueryRow(ctx, `
        SELECT user_id, platform, remote_account_id, name
        FROM ad_accounts
        WHERE id = $1`, id).
		Scan(&acct.UserID, &acct.Platform, &acct.RemoteAccountID, &acct.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ad account %s: %w", id, port.ErrEntityNotFound)
		}
		return nil, fmt.Errorf("get ad account: %w", err)
	}
	return acct, nil
}

// Token returns the stored token of an ad account. Missing and expired
// tokens are reported as port.ErrCredentialUnavailable.
func (r *AccountRepository) Token(ctx context.Context, adAccountID uuid.UUID) (*oauth2.Token, error) {
	var (
		tok       oauth2.Token
		refresh   *string
		expiresAt *time.Time
	)
	err := r.db.QueryRow(ctx, `
        SELECT access_token, token_type, refresh_token, expires_at
        FROM ad_account_credentials
        WHERE ad_account_id = $1`, adAccountID).
		Scan(&tok.AccessToken, &tok.TokenType, &refresh, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ad account %s: %w", adAccountID, port.ErrCredentialUnavailable)
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if refresh != nil {
		tok.RefreshToken = *refresh
	}
	if expiresAt != nil {
		tok.Expiry = *expiresAt
	}
	if !tok.Valid() {
		return nil, fmt.Errorf("ad account %s: token expired: %w", adAccountID, port.ErrCredentialUnavailable)
	}
	return &tok, nil
}
