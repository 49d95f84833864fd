package mapper

import (
	"time"

	ordersdomain "github.com/selfservice/fastfood-api/internal/domains/orders/domain"
	ordersports "github.com/selfservice/fastfood-api/internal/domains/orders/ports"
)

// Product is the transport shape of a product snapshot inside an order.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Client is the transport shape of the client attached to an order.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// Order is the transport shape returned by the order handlers.
type Order struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	Total         float64   `json:"total"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Products      []Product `json:"products"`
	CreatedAt     time.Time `json:"createdAt"`
	Client        *Client   `json:"client,omitempty"`
}

// PaymentStatus is the transport shape of the payment status projection.
type PaymentStatus struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
}

// CreateOrderRequest is the body accepted by POST /orders.
type CreateOrderRequest struct {
	ClientID string    `json:"clientId"`
	Products []Product `json:"products"`
}

// UpdateOrderRequest is the body accepted by PUT /orders/:id. Absent fields stay nil.
type UpdateOrderRequest struct {
	PaymentStatus *string `json:"paymentStatus"`
	Status        *string `json:"status"`
}

// ToCreateOrderInput converts a transport request into the use case input.
func ToCreateOrderInput(req CreateOrderRequest) ordersports.CreateOrderInput {
	var products []ordersdomain.ProductSnapshot
	for _, p := range req.Products {
		products = append(products, ordersdomain.ProductSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}
	return ordersports.CreateOrderInput{ClientID: req.ClientID, Products: products}
}

// ToUpdateOrderInput converts a transport request addressed at id into the use case input.
func ToUpdateOrderInput(id string, req UpdateOrderRequest) ordersports.UpdateOrderInput {
	input := ordersports.UpdateOrderInput{ID: id}
	if req.PaymentStatus != nil {
		ps := ordersdomain.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &ps
	}
	if req.Status != nil {
		st := ordersdomain.Status(*req.Status)
		input.Status = &st
	}
	return input
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	out := Order{
		ID:            order.ID,
		ClientID:      order.ClientID,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Products:      make([]Product, 0, len(order.Products)),
		CreatedAt:     order.CreatedAt,
	}
	for _, p := range order.Products {
		out.Products = append(out.Products, Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}
	if order.Client != nil {
		out.Client = &Client{ID: order.Client.ID, Name: order.Client.Name, CPF: order.Client.CPF}
	}
	return out
}

// FromDomainOrders converts a list, never returning nil.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromDomainOrder(o))
	}
	return out
}

// FromPaymentStatusView converts the payment status projection.
func FromPaymentStatusView(view *ordersports.PaymentStatusView) PaymentStatus {
	if view == nil {
		return PaymentStatus{}
	}
	return PaymentStatus{ID: view.ID, PaymentStatus: string(view.PaymentStatus)}
}
