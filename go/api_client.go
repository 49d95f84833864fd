package fastfoodserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clienthttpmapper "github.com/selfservice/fastfood-api/internal/domains/clients/adapters/http/mapper"
	clientsports "github.com/selfservice/fastfood-api/internal/domains/clients/ports"
)

// ClientAPI wires HTTP transport with the clients bounded context service.
type ClientAPI struct {
	service clientsports.Service
}

// NewClientAPI creates a ClientAPI backed by the provided service.
func NewClientAPI(service clientsports.Service) ClientAPI {
	return ClientAPI{service: service}
}

// Post /clients
// Register a client
func (api *ClientAPI) CreateClient(c *gin.Context) {
	var payload clienthttpmapper.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	client, err := api.service.CreateClient(c.Request.Context(), clienthttpmapper.ToCreateClientInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clienthttpmapper.FromDomainClient(client))
}

// Get /clients/:cpf
// Find a client by cpf
func (api *ClientAPI) GetClient(c *gin.Context) {
	client, err := api.service.GetClient(c.Request.Context(), clientsports.ClientIdentifier{CPF: c.Param("cpf")})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clienthttpmapper.FromDomainClient(client))
}
