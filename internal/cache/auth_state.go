package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/attarah-next/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// AccountAuthState is the server-side auth snapshot kept in Redis so
// token checks do not hit the database on every request.
type AccountAuthState struct {
	AccountID    uint   `json:"account_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	UpdatedAt    int64  `json:"updated_at"`
}

func accountAuthStateKey(accountID uint) string {
	return fmt.Sprintf("auth:account:%d", accountID)
}

// BuildAccountAuthState builds the snapshot from an account row
func BuildAccountAuthState(account *models.Account) *AccountAuthState {
	if account == nil {
		return nil
	}
	return &AccountAuthState{
		AccountID:    account.ID,
		Email:        account.Email,
		TokenVersion: account.TokenVersion,
		UpdatedAt:    time.Now().Unix(),
	}
}

// GetAccountAuthState reads the snapshot
func GetAccountAuthState(ctx context.Context, accountID uint) (*AccountAuthState, bool, error) {
	if accountID == 0 {
		return nil, false, nil
	}
	var state AccountAuthState
	hit, err := GetJSON(ctx, accountAuthStateKey(accountID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetAccountAuthState writes the snapshot
func SetAccountAuthState(ctx context.Context, state *AccountAuthState) error {
	if state == nil || state.AccountID == 0 {
		return nil
	}
	return SetJSON(ctx, accountAuthStateKey(state.AccountID), state, authStateCacheTTL)
}

// DelAccountAuthState drops the snapshot, forcing a database check
func DelAccountAuthState(ctx context.Context, accountID uint) error {
	if accountID == 0 {
		return nil
	}
	return Del(ctx, accountAuthStateKey(accountID))
}
