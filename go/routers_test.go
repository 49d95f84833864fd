package fastfoodserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientsidentity "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/external/identity"
	clientsmemory "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/memory"
	clientsapp "github.com/selfservice/fastfood-api/internal/domains/clients/application"
	ordersmemory "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/selfservice/fastfood-api/internal/domains/orders/application"
	productsmemory "github.com/selfservice/fastfood-api/internal/domains/products/adapters/memory"
	productsapp "github.com/selfservice/fastfood-api/internal/domains/products/application"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
	"github.com/selfservice/fastfood-api/internal/shared/idgen"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	clientRepo := clientsmemory.NewRepository()
	handlers := ApiHandleFunctions{
		OrderAPI:   NewOrderAPI(ordersapp.NewService(ordersmemory.NewRepository(), idgen.Fixed("order-1"))),
		ProductAPI: NewProductAPI(productsapp.NewService(productsmemory.NewRepository(), nil, productsapp.WithIDGenerator(idgen.Fixed("product-1"))), nil),
		ClientAPI:  NewClientAPI(clientsapp.NewService(clientRepo, clientsidentity.NewLocalGateway(clientRepo, idgen.Fixed("client-1")))),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) apierrors.ProblemDetail {
	t.Helper()
	var problem apierrors.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestOrderRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/orders", `{"clientId":"client-1","products":[{"id":"p1","name":"X-Burger","price":12.5,"category":"BURGER"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Success!"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/orders/order-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var order map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "RECEIVED", order["status"])
	assert.Equal(t, "PENDING", order["paymentStatus"])
	assert.Equal(t, 12.5, order["total"])

	rec = do(t, router, http.MethodPut, "/orders/order-1", `{"paymentStatus":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/orders/order-1/payment-status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"order-1","paymentStatus":"APPROVED"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestOrderRoutes_Errors(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/orders", `{"clientId":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Input data not provided", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodPost, "/orders", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/orders/missing", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Order not found", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodPut, "/orders/missing", `{"status":"READY"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
}

func TestOrderRoutes_RejectUnknownStatusValues(t *testing.T) {
	router := newTestRouter(t)
	rec := do(t, router, http.MethodPost, "/orders", `{"clientId":"client-1","products":[{"id":"p1","name":"X-Burger","price":12.5,"category":"BURGER"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPut, "/orders/order-1", `{"status":"DONE"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid order status", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodPut, "/orders/order-1", `{"paymentStatus":"PAID"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid payment status", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodGet, "/orders/order-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var order map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, "RECEIVED", order["status"])
	assert.Equal(t, "PENDING", order["paymentStatus"])
}

func TestProductRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/products", `{"name":"Fries","description":"Small","price":5,"category":"SIDE"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"product-1","name":"Fries","description":"Small","price":5,"category":"SIDE"}`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/products/category/SIDE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product-1"`)

	rec = do(t, router, http.MethodPost, "/products", `{"name":"Salad","description":"Green","price":5,"category":"SALAD"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid product category", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodDelete, "/products/product-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, "/products/product-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestClientRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/clients", `{"name":"John Doe","cpf":"12345678900"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"client-1","name":"John Doe","cpf":"12345678900"}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/clients", `{"name":"John Doe","cpf":"12345678900"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Client already registered", decodeProblem(t, rec).Detail)

	rec = do(t, router, http.MethodGet, "/clients/12345678900", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/clients/00000000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
