package mapper

import (
	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

// Product is the transport shape returned by the product handlers.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// CreateProductRequest is the body accepted by POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// ToCreateProductInput converts a transport request into the use case input.
func ToCreateProductInput(req CreateProductRequest) productsports.CreateProductInput {
	return productsports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(p *productsdomain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
	}
}

// FromDomainProducts converts a list, never returning nil.
func FromDomainProducts(products []*productsdomain.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromDomainProduct(p))
	}
	return out
}
