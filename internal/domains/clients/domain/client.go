package domain

// Client is a customer known to the identity service. ID is assigned by that service.
type Client struct {
	ID   string
	Name string
	CPF  string
}

// NewClient builds a client. The cpf is stored as given.
func NewClient(id, name, cpf string) *Client {
	return &Client{ID: id, Name: name, CPF: cpf}
}

// Clone returns a copy of the client.
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
