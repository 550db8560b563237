package service

import (
	"errors"
	"testing"

	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/repository"

	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *UserAuthService {
	t.Helper()
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "unit-test-secret-key-0123456789abcdef", ExpireHours: 1},
	}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	return NewUserAuthService(cfg, repository.NewAccountRepository(db), repository.NewUserRepository(db), queueClient)
}

func TestRegisterNormalizesEmailAndProvisionsInline(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	account, err := svc.Register(RegisterInput{Email: "  Maya@Example.COM ", Password: "secret123", FirstName: "Maya"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.Email != "maya@example.com" {
		t.Fatalf("email should be lowercased and trimmed, got %s", account.Email)
	}
	if account.PasswordHash == "secret123" || account.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	// queue disabled, so the storefront user record lands inline
	user, err := svc.GetUserByAccountID(account.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user == nil {
		t.Fatalf("user record should be provisioned")
	}
	if user.Email != account.Email || user.FirstName != "Maya" {
		t.Fatalf("user record should mirror the account fields")
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(RegisterInput{Email: "MAYA@example.com", Password: "other456"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestRegisterEmptyPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "   "})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("want ErrPasswordRequired got %v", err)
	}
}

func TestProvisionUserIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	account, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first, err := svc.ProvisionUser(account.ID)
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	second, err := svc.ProvisionUser(account.ID)
	if err != nil {
		t.Fatalf("second provision failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("provisioning must be idempotent, got user ids %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("account_id = ?", account.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want one user row got %d", count)
	}
}

func TestProvisionUserUnknownAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.ProvisionUser(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	account, token, expiresAt, err := svc.Login("maya@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login should issue a token")
	}
	if expiresAt.IsZero() {
		t.Fatalf("token expiry should be set")
	}
	if account.LastLoginAt == nil {
		t.Fatalf("login timestamp should be recorded")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AccountID != account.ID {
		t.Fatalf("claims account id want %d got %d", account.ID, claims.AccountID)
	}
	if claims.Email != "maya@example.com" {
		t.Fatalf("claims email want maya@example.com got %s", claims.Email)
	}
	if claims.TokenVersion != account.TokenVersion {
		t.Fatalf("claims token version want %d got %d", account.TokenVersion, claims.TokenVersion)
	}
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, _, err := svc.Login("maya@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestLoginUnknownEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, _, _, err := svc.Login("nobody@example.com", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestParseJWTRejectsForeignSignature(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.Register(RegisterInput{Email: "maya@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, token, _, err := svc.Login("maya@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	other := newAuthService(t, db)
	other.cfg.JWT.SecretKey = "a-completely-different-secret-key-value"
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("token signed with another key must not parse")
	}
}
