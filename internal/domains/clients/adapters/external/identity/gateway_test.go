package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identityclient "github.com/selfservice/fastfood-api/internal/clients/http/identity"
	"github.com/selfservice/fastfood-api/internal/domains/clients/domain"
	"github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

func TestGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/clients":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"abc123","name":"John Doe","cpf":"12345678900"}`))
		case r.URL.Path == "/clients/12345678900":
			_, _ = w.Write([]byte(`{"id":"abc123","name":"John Doe","cpf":"12345678900"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	client, err := identityclient.NewIdentityClient(srv.URL, srv.Client())
	require.NoError(t, err)
	gateway := NewGateway(client)
	ctx := context.Background()

	created, err := gateway.CreateUser(ctx, domain.NewClient("", "John Doe", "12345678900"))
	require.NoError(t, err)
	assert.Equal(t, domain.NewClient("abc123", "John Doe", "12345678900"), created)

	found, err := gateway.GetUserDetailsByCpf(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "abc123", found.ID)

	_, err = gateway.GetUserDetailsByCpf(ctx, "00000000000")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
