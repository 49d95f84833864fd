package fastfoodserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/selfservice/fastfood-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/selfservice/fastfood-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service ordersports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /orders
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	out, err := api.service.CreateOrder(c.Request.Context(), orderhttpmapper.ToCreateOrderInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": out.Message})
}

// Get /orders
// List orders for the kitchen board
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrders(orders))
}

// Get /orders/:id
// Find an order and its payment status
func (api *OrderAPI) GetOrderPaymentStatus(c *gin.Context) {
	order, err := api.service.GetOrderPaymentStatus(c.Request.Context(), ordersports.OrderIdentifier{ID: c.Param("id")})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /orders/:id/payment-status
// Read only the payment status of an order
func (api *OrderAPI) GetPaymentStatusSummary(c *gin.Context) {
	view, err := api.service.GetPaymentStatusSummary(c.Request.Context(), ordersports.OrderIdentifier{ID: c.Param("id")})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromPaymentStatusView(view))
}

// Put /orders/:id
// Update the status or payment status of an order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	var payload orderhttpmapper.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := api.service.UpdateOrder(c.Request.Context(), orderhttpmapper.ToUpdateOrderInput(c.Param("id"), payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}
