package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory client persistence adapter.
type Repository struct {
	mu      sync.RWMutex
	clients map[string]*domain.Client
}

func NewRepository() *Repository {
	return &Repository{clients: map[string]*domain.Client{}}
}

func (r *Repository) Insert(_ context.Context, client *domain.Client) error {
	if client == nil {
		return errors.New("client is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; ok {
		return ports.ErrAlreadyExists
	}
	for _, existing := range r.clients {
		if existing.CPF == client.CPF {
			return ports.ErrAlreadyExists
		}
	}
	r.clients[client.ID] = client.Clone()
	return nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return client.Clone(), nil
}

func (r *Repository) FindAll(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		list = append(list, client.Clone())
	}
	return list, nil
}

func (r *Repository) Update(_ context.Context, client *domain.Client) error {
	if client == nil {
		return errors.New("client is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return ports.ErrNotFound
	}
	r.clients[client.ID] = client.Clone()
	return nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *Repository) CpfExists(_ context.Context, cpf string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.clients {
		if client.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}
