package identity

import (
	"context"
	"errors"

	identityclient "github.com/selfservice/fastfood-api/internal/clients/http/identity"
	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

// Gateway implements the identity port over HTTP.
type Gateway struct {
	client *identityclient.Client
}

// NewGateway wires an identity HTTP client into a gateway adapter.
func NewGateway(client *identityclient.Client) *Gateway {
	return &Gateway{client: client}
}

// CreateUser registers the client and returns it with the identity service id.
func (g *Gateway) CreateUser(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("identity gateway not configured")
	}
	if client == nil {
		return nil, errors.New("client is nil")
	}
	created, err := g.client.CreateUser(ctx, identityclient.ClientPayload{Name: client.Name, CPF: client.CPF})
	if err != nil {
		return nil, err
	}
	return fromPayload(created), nil
}

// GetUserDetailsByCpf loads a client by cpf. Unknown cpfs yield ports.ErrNotFound.
func (g *Gateway) GetUserDetailsByCpf(ctx context.Context, cpf string) (*domain.Client, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("identity gateway not configured")
	}
	found, err := g.client.GetUserByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, identityclient.ErrClientNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return fromPayload(found), nil
}

func fromPayload(p *identityclient.ClientPayload) *domain.Client {
	return domain.NewClient(p.ID, p.Name, p.CPF)
}

var _ ports.IdentityGateway = (*Gateway)(nil)
