package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/EvelinaRudin/blooberry-backend/internal/middleware"
	"github.com/EvelinaRudin/blooberry-backend/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("checkout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkout.handler")
	}
	return &Handler{service: svc, logger: l}
}

// CreateSession handles the storefront's cart submission.
// POST /create-checkout-session
func (h *Handler) CreateSession(c *gin.Context) {
	requestID := c.GetString(middleware.RequestIDKey)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := classifyBindError(err)
		h.logger.Warn("checkout payload rejected",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}

	res, err := h.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			h.logger.Error("checkout failed",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
		}
		c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
		return
	}

	c.JSON(http.StatusOK, res)
}

// classifyBindError decides which 400 a malformed body gets: a type error on
// a field inside a cart item means the cart was a real array with a broken
// item, anything else means the cartItems payload itself was unusable.
func classifyBindError(err error) *apperror.AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && strings.Contains(typeErr.Field, ".") {
		return ErrInvalidCartItem
	}
	return ErrInvalidCartData
}
