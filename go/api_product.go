package fastfoodserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	producthttpmapper "github.com/selfservice/fastfood-api/internal/domains/products/adapters/http/mapper"
	productsdomain "github.com/selfservice/fastfood-api/internal/domains/products/domain"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
)

// ProductAPI wires HTTP transport with the products bounded context service and workflows.
type ProductAPI struct {
	service   productsports.Service
	workflows productsports.WorkflowOrchestrator
}

// NewProductAPI creates a ProductAPI. A nil orchestrator creates products through the service.
func NewProductAPI(service productsports.Service, workflows productsports.WorkflowOrchestrator) ProductAPI {
	return ProductAPI{service: service, workflows: workflows}
}

// Post /products
// Add a product to the menu
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload producthttpmapper.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	product, err := api.createProduct(c.Request.Context(), producthttpmapper.ToCreateProductInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producthttpmapper.FromDomainProduct(product))
}

func (api *ProductAPI) createProduct(ctx context.Context, input productsports.CreateProductInput) (*productsdomain.Product, error) {
	if api.workflows != nil {
		return api.workflows.CreateProduct(ctx, input)
	}
	return api.service.CreateProduct(ctx, input)
}

// Get /products
// List the menu
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProducts(products))
}

// Delete /products/:id
// Remove a product from the menu
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
	if _, err := api.service.DeleteProduct(c.Request.Context(), productsports.ProductIdentifier{ID: c.Param("id")}); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /products/category/:categoryId
// List the products of one category
func (api *ProductAPI) GetProductsByCategory(c *gin.Context) {
	products, err := api.service.GetProductsByCategory(c.Request.Context(), productsports.CategoryQuery{CategoryID: c.Param("categoryId")})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProducts(products))
}
