package checkout

import (
	"net/http"

	"github.com/EvelinaRudin/blooberry-backend/internal/pkg/apperror"
)

// Messages are part of the wire contract with the storefront; do not reword.
var (
	ErrInvalidCartData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cartItems data",
		http.StatusBadRequest,
	)

	ErrInvalidCartItem = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart item format",
		http.StatusBadRequest,
	)

	ErrCheckoutFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create checkout session",
		http.StatusInternalServerError,
	)
)
