package fastfoodserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every bounded context.
type ApiHandleFunctions struct {
	OrderAPI   OrderAPI
	ProductAPI ProductAPI
	ClientAPI  ClientAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", Healthz},
		{"CreateOrder", http.MethodPost, "/orders", handleFunctions.OrderAPI.CreateOrder},
		{"ListOrders", http.MethodGet, "/orders", handleFunctions.OrderAPI.ListOrders},
		{"GetOrderPaymentStatus", http.MethodGet, "/orders/:id", handleFunctions.OrderAPI.GetOrderPaymentStatus},
		{"GetPaymentStatusSummary", http.MethodGet, "/orders/:id/payment-status", handleFunctions.OrderAPI.GetPaymentStatusSummary},
		{"UpdateOrder", http.MethodPut, "/orders/:id", handleFunctions.OrderAPI.UpdateOrder},
		{"CreateProduct", http.MethodPost, "/products", handleFunctions.ProductAPI.CreateProduct},
		{"ListProducts", http.MethodGet, "/products", handleFunctions.ProductAPI.ListProducts},
		{"DeleteProduct", http.MethodDelete, "/products/:id", handleFunctions.ProductAPI.DeleteProduct},
		{"GetProductsByCategory", http.MethodGet, "/products/category/:categoryId", handleFunctions.ProductAPI.GetProductsByCategory},
		{"CreateClient", http.MethodPost, "/clients", handleFunctions.ClientAPI.CreateClient},
		{"GetClient", http.MethodGet, "/clients/:cpf", handleFunctions.ClientAPI.GetClient},
	}
}
