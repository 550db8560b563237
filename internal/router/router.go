package router

import (
	"fmt"
	"strings"

	"github.com/attarah-next/internal/cache"
	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/constants"
	publichandlers "github.com/attarah-next/internal/http/handlers/public"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP routes
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		// catalog, open to everyone
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/categories", publicHandler.GetCategories)
		api.GET("/states", publicHandler.GetStates)

		// order confirmation and checkout page, by order code; a valid
		// token scopes the lookup to its owner
		optional := api.Group("")
		optional.Use(OptionalAccountJWTMiddleware(cfg.JWT.SecretKey, c.AccountRepo, c.UserRepo))
		{
			optional.GET("/orders/:code", publicHandler.GetOrder)
			optional.GET("/checkout/:code", publicHandler.GetCheckoutPage)
		}

		// guest checkout registers an account as part of the flow
		guest := api.Group("/guest")
		{
			guest.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), publicHandler.GuestCheckout)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		user := api.Group("")
		user.Use(AccountJWTAuthMiddleware(cfg.JWT.SecretKey, c.AccountRepo, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.UpsertCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.GET("/addresses", publicHandler.ListAddresses)
			user.POST("/addresses", publicHandler.CreateAddress)
			user.DELETE("/addresses/:id", publicHandler.DeleteAddress)
			user.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
