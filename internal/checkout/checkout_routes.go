package checkout

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/create-checkout-session", handler.CreateSession)
}
