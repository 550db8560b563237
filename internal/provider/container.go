package provider

import (
	"github.com/attarah-next/internal/cache"
	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/repository"
	"github.com/attarah-next/internal/service"
)

// Container dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AccountRepo  repository.AccountRepository
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	AddressRepo  repository.AddressRepository
	StateRepo    repository.StateRepository
	OrderRepo    repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	CatalogService  *service.CatalogService
	CategoryService *service.CategoryService
	StateService    *service.StateService
	CartService     *service.CartService
	AddressService  *service.AddressService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
}

// NewContainer initializes the container
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AccountRepo = repository.NewAccountRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.StateRepo = repository.NewStateRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.Config, c.AccountRepo, c.UserRepo, c.QueueClient)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.StateService = service.NewStateService(c.StateRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo, c.StateService)
	c.CheckoutService = service.NewCheckoutService(c.Config, c.OrderRepo, c.CartRepo, c.AddressService, c.UserAuthService, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.AddressService, c.StateService)
}
