package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	fastfoodserver "github.com/selfservice/fastfood-api/go"
	identityclient "github.com/selfservice/fastfood-api/internal/clients/http/identity"
	orderserviceclient "github.com/selfservice/fastfood-api/internal/clients/http/orderservice"
	clientsidentity "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/external/identity"
	clientsmemory "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/memory"
	clientsobs "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/observability"
	clientspostgres "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/persistence/postgres"
	clientsapp "github.com/selfservice/fastfood-api/internal/domains/clients/application"
	clientsports "github.com/selfservice/fastfood-api/internal/domains/clients/ports"
	ordersmemory "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/selfservice/fastfood-api/internal/domains/orders/application"
	ordersports "github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	productsorderservice "github.com/selfservice/fastfood-api/internal/domains/products/adapters/external/orderservice"
	productsmemory "github.com/selfservice/fastfood-api/internal/domains/products/adapters/memory"
	productsobs "github.com/selfservice/fastfood-api/internal/domains/products/adapters/observability"
	productspostgres "github.com/selfservice/fastfood-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/selfservice/fastfood-api/internal/domains/products/application"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	"github.com/selfservice/fastfood-api/internal/platform/migrations"
	platformobservability "github.com/selfservice/fastfood-api/internal/platform/observability"
	platformpostgres "github.com/selfservice/fastfood-api/internal/platform/postgres"
)

// Services holds the use cases of every bounded context, already wrapped with telemetry.
type Services struct {
	Orders   ordersports.Service
	Products productsports.Service
	Clients  clientsports.Service

	// ProductCore is the undecorated product service, used by Temporal activities.
	ProductCore *productsapp.Service
}

type repositories struct {
	orders   ordersports.Repository
	products productsports.Repository
	clients  clientsports.Repository
}

// BuildServices connects storage and outbound gateways and assembles the services. The returned
// cleanup closes the database connection.
func BuildServices(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (*Services, func(), error) {
	logger := effectiveLogger(instruments)

	db, cleanup := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	repos, err := buildRepositories(db)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	httpClient := &http.Client{Timeout: cfg.OutboundTimeout}

	identity, err := buildIdentityGateway(cfg, httpClient, repos.clients, logger)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	orderService, err := buildOrderServiceGateway(cfg, httpClient, logger)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}

	productCore := productsapp.NewService(
		repos.products,
		orderService,
		productsapp.WithRejectionObserver(productsobs.NewRejectionRecorder(logger, instruments.Meter("internal.products.replication"))),
	)

	services := &Services{
		Orders: ordersobs.New(
			ordersapp.NewService(repos.orders, nil),
			ordersobs.WithLogger(logger),
			ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
			ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
		),
		Products: productsobs.New(
			productCore,
			productsobs.WithLogger(logger),
			productsobs.WithTracer(instruments.Tracer("internal.products.application")),
			productsobs.WithMeter(instruments.Meter("internal.products.application")),
		),
		Clients: clientsobs.New(
			clientsapp.NewService(repos.clients, identity),
			clientsobs.WithLogger(logger),
			clientsobs.WithTracer(instruments.Tracer("internal.clients.application")),
			clientsobs.WithMeter(instruments.Meter("internal.clients.application")),
		),
		ProductCore: productCore,
	}
	return services, cleanup, nil
}

func buildRepositories(db *gorm.DB) (repositories, error) {
	if db == nil {
		return repositories{
			orders:   ordersmemory.NewRepository(),
			products: productsmemory.NewRepository(),
			clients:  clientsmemory.NewRepository(),
		}, nil
	}
	if err := migrations.Run(db); err != nil {
		return repositories{}, fmt.Errorf("apply migrations: %w", err)
	}
	return repositories{
		orders:   orderspostgres.NewRepository(db),
		products: productspostgres.NewRepository(db),
		clients:  clientspostgres.NewRepository(db),
	}, nil
}

func buildIdentityGateway(cfg Config, httpClient *http.Client, repo clientsports.Repository, logger *slog.Logger) (clientsports.IdentityGateway, error) {
	if cfg.IdentityURL == "" {
		logger.Warn("IDENTITY_SERVICE_URL not set, client ids are generated locally")
		return clientsidentity.NewLocalGateway(repo, nil), nil
	}
	client, err := identityclient.NewIdentityClient(cfg.IdentityURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("identity client: %w", err)
	}
	logger.Info("identity gateway configured", slog.String("url", cfg.IdentityURL))
	return clientsidentity.NewGateway(client), nil
}

func buildOrderServiceGateway(cfg Config, httpClient *http.Client, logger *slog.Logger) (productsports.OrderServiceGateway, error) {
	if cfg.OrderServiceURL == "" {
		logger.Warn("ORDER_SERVICE_URL not set, products are not replicated")
		return productsorderservice.Noop{}, nil
	}
	client, err := orderserviceclient.NewOrderServiceClient(cfg.OrderServiceURL, httpClient)
	if err != nil {
		return nil, fmt.Errorf("order service client: %w", err)
	}
	logger.Info("order service gateway configured", slog.String("url", cfg.OrderServiceURL))
	return productsorderservice.NewRegistrar(client), nil
}

// NewHandler builds the gin engine serving every route, instrumented with otelgin.
func NewHandler(serviceName string, services *Services, workflows productsports.WorkflowOrchestrator) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	return fastfoodserver.NewRouterWithGinEngine(engine, fastfoodserver.ApiHandleFunctions{
		OrderAPI:   fastfoodserver.NewOrderAPI(services.Orders),
		ProductAPI: fastfoodserver.NewProductAPI(services.Products, workflows),
		ClientAPI:  fastfoodserver.NewClientAPI(services.Clients),
	})
}
