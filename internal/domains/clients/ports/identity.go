package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
)

// IdentityGateway registers and looks up clients in the identity service.
// GetUserDetailsByCpf returns ErrNotFound for unknown cpfs.
type IdentityGateway interface {
	CreateUser(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetUserDetailsByCpf(ctx context.Context, cpf string) (*domain.Client, error)
}
