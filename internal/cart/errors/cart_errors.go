package carterrors

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item",
		http.StatusBadRequest,
	)
)

func MapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			if fe.Field() == "Quantity" {
				return ErrInvalidQuantity
			}
		}
	}
	return ErrInvalidItem
}
