package application

import (
	"errors"

	"github.com/selfservice/fastfood-api/internal/domains/products/domain"
	apierrors "github.com/selfservice/fastfood-api/internal/shared/errors"
)

const (
	msgInputNotProvided = "Input data not provided"
	msgInvalidCategory  = "Invalid product category"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidCategory) {
		return apierrors.NewBadRequest(msgInvalidCategory)
	}
	return err
}
