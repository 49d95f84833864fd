package application

import (
	"context"
	"fmt"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

// Service orchestrates the client use cases.
type Service struct {
	repo     ports.Repository
	identity ports.IdentityGateway
}

// NewService wires the client service with its dependencies.
func NewService(repo ports.Repository, identity ports.IdentityGateway) *Service {
	return &Service{repo: repo, identity: identity}
}

// CreateClient registers a client with the identity service and stores the returned record.
func (s *Service) CreateClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if input.Name == "" || input.CPF == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	exists, err := s.repo.CpfExists(ctx, input.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierrors.NewBadRequest(msgAlreadyExists)
	}
	created, err := s.identity.CreateUser(ctx, domain.NewClient("", input.Name, input.CPF))
	if err != nil {
		return nil, fmt.Errorf("create identity user: %w", err)
	}
	if err := s.repo.Insert(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetClient loads a client from the identity service by cpf.
func (s *Service) GetClient(ctx context.Context, input ports.ClientIdentifier) (*domain.Client, error) {
	if input.CPF == "" {
		return nil, apierrors.NewBadRequest(msgInputNotProvided)
	}
	return s.identity.GetUserDetailsByCpf(ctx, input.CPF)
}

var _ ports.Service = (*Service)(nil)
