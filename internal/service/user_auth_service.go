package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService registration, login and token handling
type UserAuthService struct {
	cfg         *config.Config
	accountRepo repository.AccountRepository
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewUserAuthService creates the auth service
func NewUserAuthService(cfg *config.Config, accountRepo repository.AccountRepository, userRepo repository.UserRepository, queueClient *queue.Client) *UserAuthService {
	return &UserAuthService{
		cfg:         cfg,
		accountRepo: accountRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// AuthJWTClaims storefront JWT claims
type AuthJWTClaims struct {
	AccountID    uint   `json:"account_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a token for an account
func (s *UserAuthService) GenerateJWT(account *models.Account) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := AuthJWTClaims{
		AccountID:    account.ID,
		Email:        account.Email,
		TokenVersion: account.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates a token and returns its claims
func (s *UserAuthService) ParseJWT(tokenString string) (*AuthJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &AuthJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*AuthJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// RegisterInput registration input
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Register creates the account and kicks off user-record provisioning.
// The storefront user row lands asynchronously through the queue; when
// the queue is disabled provisioning happens inline.
func (s *UserAuthService) Register(input RegisterInput) (*models.Account, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	password := strings.TrimSpace(input.Password)
	if password == "" {
		return nil, ErrPasswordRequired
	}

	exist, err := s.accountRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &models.Account{
		Email:        normalized,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueUserProvision(queue.UserProvisionPayload{AccountID: account.ID}); err != nil {
			logger.Errorw("user_provision_enqueue_failed", "account_id", account.ID, "error", err)
		}
	} else {
		if _, err := s.ProvisionUser(account.ID); err != nil {
			logger.Errorw("user_provision_inline_failed", "account_id", account.ID, "error", err)
		}
	}

	return account, nil
}

// ProvisionUser materializes the storefront user record for an account.
// Idempotent: an already provisioned account returns the existing row.
func (s *UserAuthService) ProvisionUser(accountID uint) (*models.User, error) {
	if accountID == 0 {
		return nil, ErrValidationFailed
	}
	existing, err := s.userRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	user := &models.User{
		AccountID: account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Phone:     account.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	logger.Infow("user_provisioned", "account_id", account.ID, "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a token
func (s *UserAuthService) Login(email, password string) (*models.Account, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	account, err := s.accountRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if account == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	account.LastLoginAt = &now
	if err := s.accountRepo.Update(account); err != nil {
		logger.Warnw("login_timestamp_update_failed", "account_id", account.ID, "error", err)
	}
	return account, token, expiresAt, nil
}

// GetAccountByID fetches an account
func (s *UserAuthService) GetAccountByID(id uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

// GetUserByAccountID fetches the provisioned user record, nil while
// provisioning is still in flight
func (s *UserAuthService) GetUserByAccountID(accountID uint) (*models.User, error) {
	return s.userRepo.GetByAccountID(accountID)
}

// normalizeEmail validates and lowercases an email address
func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(parsed.Address), nil
}
