package ports

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
)

// CreateClientInput carries the attributes of a new client.
type CreateClientInput struct {
	Name string
	CPF  string
}

// ClientIdentifier addresses a client by cpf.
type ClientIdentifier struct {
	CPF string
}

// Service exposes the client use cases to adapters.
type Service interface {
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, input ClientIdentifier) (*domain.Client, error)
}
