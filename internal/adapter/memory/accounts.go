package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// Accounts implements port.AccountRepository and port.TokenProvider with
// static, in-process data.
type Accounts struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.AdAccount
	tokens   map[uuid.UUID]*oauth2.Token
}

var (
	_ port.AccountRepository = (*Accounts)(nil)
	_ port.TokenProvider     = (*Accounts)(nil)
)

func NewAccounts() *Accounts {
	return &Accounts{
		accounts: make(map[uuid.UUID]domain.AdAccount),
		tokens:   make(map[uuid.UUID]*oauth2.Token),
	}
}

// PutAccount stores an account and, when tok is non-nil, its access token.
func (a *Accounts) PutAccount(acct domain.AdAccount, tok *oauth2.Token) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts[acct.ID] = acct
	if tok != nil {
		a.tokens[acct.ID] = tok
	}
}

func (a *Accounts) GetAdAccount(_ context.Context, id uuid.UUID) (*domain.AdAccount, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	acct, ok := a.accounts[id]
	if !ok {
		return nil, fmt.Errorf("ad account %s: %w", id, port.ErrEntityNotFound)
	}
	return &acct, nil
}

// Token returns the stored token when it is still valid.
func (a *Accounts) Token(_ context.Context, id uuid.UUID) (*oauth2.Token, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	tok, ok := a.tokens[id]
	if !ok || !tok.Valid() {
		return nil, fmt.Errorf("ad account %s: %w", id, port.ErrCredentialUnavailable)
	}
	return tok, nil
}
