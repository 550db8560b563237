package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/attarah-next/internal/cache"
	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/i18n"
	"github.com/attarah-next/internal/repository"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// CORSMiddleware cross-origin middleware
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
			"X-CSRF-Token",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware request id middleware
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware structured request log middleware
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// AccountJWTAuthMiddleware authenticates storefront requests. It sets
// account_id from the token and user_id from the provisioned user
// record when that record has landed.
func AccountJWTAuthMiddleware(secretKey string, accountRepo repository.AccountRepository, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, key, ok := parseBearerClaims(c, secretKey, accountRepo)
		if !ok {
			msg := i18n.T(i18n.ResolveLocale(c), key)
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}

		attachIdentity(c, claims, userRepo)
		c.Next()
	}
}

// OptionalAccountJWTMiddleware attaches the identity when a valid
// token is presented and lets the request through anonymously
// otherwise.
func OptionalAccountJWTMiddleware(secretKey string, accountRepo repository.AccountRepository, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.Next()
			return
		}
		if claims, _, ok := parseBearerClaims(c, secretKey, accountRepo); ok {
			attachIdentity(c, claims, userRepo)
		}
		c.Next()
	}
}

// parseBearerClaims validates the bearer token and the account it
// names. The returned key is the i18n message key on failure.
func parseBearerClaims(c *gin.Context, secretKey string, accountRepo repository.AccountRepository) (*service.AuthJWTClaims, string, bool) {
	if secretKey == "" {
		return nil, "error.jwt_secret_missing", false
	}
	if accountRepo == nil {
		return nil, "error.token_invalid", false
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "error.auth_header_missing", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, "error.auth_header_invalid", false
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &service.AuthJWTClaims{}
	token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid || claims.AccountID == 0 {
		return nil, "error.token_invalid", false
	}

	if cached, hit, cacheErr := cache.GetAccountAuthState(c.Request.Context(), claims.AccountID); cacheErr == nil && hit && cached != nil {
		if claims.TokenVersion != cached.TokenVersion {
			return nil, "error.token_revoked", false
		}
		return claims, "", true
	}

	account, err := accountRepo.GetByID(claims.AccountID)
	if err != nil || account == nil {
		return nil, "error.token_invalid", false
	}
	if claims.TokenVersion != account.TokenVersion {
		return nil, "error.token_revoked", false
	}
	_ = cache.SetAccountAuthState(c.Request.Context(), cache.BuildAccountAuthState(account))

	return claims, "", true
}

func attachIdentity(c *gin.Context, claims *service.AuthJWTClaims, userRepo repository.UserRepository) {
	c.Set("account_id", claims.AccountID)
	c.Set("user_email", claims.Email)
	if userRepo == nil {
		return
	}
	if user, err := userRepo.GetByAccountID(claims.AccountID); err == nil && user != nil {
		c.Set("user_id", user.ID)
	}
}
