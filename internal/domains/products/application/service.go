package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

// Service orchestrates the product use cases.
type Service struct {
	repo       ports.Repository
	gateway    ports.OrderServiceGateway
	ids        idgen.Generator
	rejections ports.RejectionObserver
}

// Option customises the product service.
type Option func(*Service)

// WithRejectionObserver routes order service rejections to observer instead of the default logger.
func WithRejectionObserver(observer ports.RejectionObserver) Option {
	return func(s *Service) {
		if observer != nil {
			s.rejections = observer
		}
	}
}

// WithIDGenerator overrides the product id generator.
func WithIDGenerator(ids idgen.Generator) Option {
	return func(s *Service) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// NewService wires the product service. A nil gateway disables replication to the order service.
func NewService(repo ports.Repository, gateway ports.OrderServiceGateway, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		gateway:    gateway,
		ids:        idgen.NewUUID(),
		rejections: logRejections{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateProduct stores a new product and replicates it to the order service.
func (s *Service) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product, err := s.PersistProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	if _, err := s.RegisterProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// PersistProduct validates and stores a product without contacting the order service.
func (s *Service) PersistProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Description == "" || input.Price == 0 || input.Category == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, mapError(err)
	}
	product := domain.NewProduct(s.ids.Generate(), input.Name, input.Description, input.Price, category)
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// RegisterProduct replicates a stored product. A remote rejection is reported to the rejection
// observer and does not fail the call; a transport failure does.
func (s *Service) RegisterProduct(ctx context.Context, product *domain.Product) (ports.RegistrationResult, error) {
	if s.gateway == nil {
		return ports.RegistrationResult{Accepted: true}, nil
	}
	result, err := s.gateway.AddNewProduct(ctx, product)
	if err != nil {
		return ports.RegistrationResult{}, fmt.Errorf("register product %s with order service: %w", product.ID, err)
	}
	if !result.Accepted {
		s.rejections.ProductRejected(ctx, product, result)
	}
	return result, nil
}

// DeleteProduct removes a product by id.
func (s *Service) DeleteProduct(ctx context.Context, input ports.ProductIdentifier) (*ports.DeleteProductOutput, error) {
	if input.ID == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}
	return &ports.DeleteProductOutput{Message: "Success!"}, nil
}

// GetProductsByCategory lists the products of one category.
func (s *Service) GetProductsByCategory(ctx context.Context, input ports.CategoryQuery) ([]*domain.Product, error) {
	if input.CategoryID == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	category, err := domain.ParseCategory(input.CategoryID)
	if err != nil {
		return nil, mapError(err)
	}
	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

// ListProducts returns every product.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

type logRejections struct{}

func (logRejections) ProductRejected(ctx context.Context, product *domain.Product, result ports.RegistrationResult) {
	slog.Default().LogAttrs(ctx, slog.LevelWarn, "order service rejected product",
		slog.String("product.id", product.ID),
		slog.Int("status", result.StatusCode),
		slog.String("body", result.ErrorBody))
}

var (
	_ ports.Service            = (*Service)(nil)
	_ ports.PersistenceService = (*Service)(nil)
	_ ports.Registrar          = (*Service)(nil)
)
