package application

import (
	"errors"

	"github.com/selfservice/fastfood-api/internal/domains/orders/ports"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

const (
	msgInputNotProvided   = "Input data not provided"
	msgOrderIDNotProvided = "Order id not provided"
	msgOrderNotFound      = "Order not found"
	msgInvalidStatus      = "Invalid order status"
	msgInvalidPayment     = "Invalid payment status"
)

// mapError turns a missing order into the validation kind callers already handle.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return apierrors.NewBadRequest(msgOrderNotFound)
	}
	return err
}
