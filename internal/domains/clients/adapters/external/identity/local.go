package identity

import (
	"context"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

// LocalGateway stands in for the identity service when none is configured: ids are generated
// locally and lookups read the client repository.
type LocalGateway struct {
	repo ports.Repository
	ids  idgen.Generator
}

// NewLocalGateway builds a gateway backed by repo. A nil generator defaults to random UUIDs.
func NewLocalGateway(repo ports.Repository, ids idgen.Generator) *LocalGateway {
	if ids == nil {
		ids = idgen.NewUUID()
	}
	return &LocalGateway{repo: repo, ids: ids}
}

func (g *LocalGateway) CreateUser(_ context.Context, client *domain.Client) (*domain.Client, error) {
	return domain.NewClient(g.ids.Generate(), client.Name, client.CPF), nil
}

func (g *LocalGateway) GetUserDetailsByCpf(ctx context.Context, cpf string) (*domain.Client, error) {
	clients, err := g.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return nil, ports.ErrNotFound
}

var _ ports.IdentityGateway = (*LocalGateway)(nil)
