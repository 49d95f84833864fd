package ports

import (
	"context"
	"errors"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
)

var (
	ErrNotFound      = errors.New("client not found")
	ErrAlreadyExists = errors.New("client already exists")
)

// Repository persists clients. Lookups by id return ErrNotFound when absent.
type Repository interface {
	Insert(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	CpfExists(ctx context.Context, cpf string) (bool, error)
}
