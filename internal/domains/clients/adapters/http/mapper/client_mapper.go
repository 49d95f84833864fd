package mapper

import (
	clientsdomain "github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	clientsports "github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

// Client is the transport shape returned by the client handlers.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// CreateClientRequest is the body accepted by POST /clients.
type CreateClientRequest struct {
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

func ToCreateClientInput(req CreateClientRequest) clientsports.CreateClientInput {
	return clientsports.CreateClientInput{Name: req.Name, CPF: req.CPF}
}

func FromDomainClient(c *clientsdomain.Client) Client {
	if c == nil {
		return Client{}
	}
	return Client{ID: c.ID, Name: c.Name, CPF: c.CPF}
}
