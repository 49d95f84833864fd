package fastfoodserver

import (
	"github.com/gin-gonic/gin"

	clientsports "github.com/selfservice/fastfood-api/internal/domains/clients/ports"
	ordersports "github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	productsports "github.com/selfservice/fastfood-api/internal/domains/products/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

// serviceResponder maps use case errors: validation failures to 400, missing resources to 404,
// duplicates to 409 and anything else to 500.
var serviceResponder = apierrors.NewChainedResponder("",
	apierrors.MapSentinel(ordersports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(productsports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(clientsports.ErrNotFound, apierrors.ErrNotFound),
	apierrors.MapSentinel(ordersports.ErrAlreadyExists, apierrors.ErrConflict),
	apierrors.MapSentinel(productsports.ErrAlreadyExists, apierrors.ErrConflict),
	apierrors.MapSentinel(clientsports.ErrAlreadyExists, apierrors.ErrConflict),
)

// respondBadRequest answers a malformed request body with a 400 problem.
func respondBadRequest(c *gin.Context, err error) {
	apierrors.DefaultResponder.BadRequest(c, err.Error())
}

// respondServiceError classifies an error returned by a use case.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	serviceResponder.RespondError(c, err)
}
