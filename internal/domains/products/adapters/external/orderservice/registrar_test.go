package orderservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderserviceclient "github.com/selfservice/fastfood-api/internal/clients/http/orderservice"
	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	"github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

func newRegistrar(t *testing.T, status int, body string) *Registrar {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	client, err := orderserviceclient.NewOrderServiceClient(srv.URL, srv.Client())
	require.NoError(t, err)
	return NewRegistrar(client)
}

func TestRegistrar_Accepted(t *testing.T) {
	registrar := newRegistrar(t, http.StatusCreated, `{}`)

	result, err := registrar.AddNewProduct(context.Background(), domain.NewProduct("1", "Pizza", "Big", 30, domain.CategoryPizza))
	require.NoError(t, err)
	assert.Equal(t, ports.RegistrationResult{Accepted: true, StatusCode: http.StatusCreated}, result)
}

func TestRegistrar_RejectedKeepsBody(t *testing.T) {
	registrar := newRegistrar(t, http.StatusUnprocessableEntity, `{"message":"duplicated"}`)

	result, err := registrar.AddNewProduct(context.Background(), domain.NewProduct("1", "Pizza", "Big", 30, domain.CategoryPizza))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, http.StatusUnprocessableEntity, result.StatusCode)
	assert.Equal(t, `{"message":"duplicated"}`, result.ErrorBody)
}

func TestToPayload(t *testing.T) {
	payload := ToPayload(domain.NewProduct("1", "Pizza", "Big", 30, domain.CategoryPizza))
	assert.Equal(t, orderserviceclient.ProductPayload{ID: "1", Name: "Pizza", Description: "Big", Price: 30, Category: "PIZZA"}, payload)
}
