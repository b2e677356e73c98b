package handlers

import (
	"net/http"

	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces. Paths are unversioned to match the browser client.
func RegisterRoutes(r *gin.Engine, services *ports.ServiceContainer) {
	// Liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	root := r.Group("")
	registerAccountRoutes(root, services.Account)
	registerTransferRoutes(root, services.Transfer)
	registerCurrencyRoutes(root, services.Currency)
	registerExchangeRateRoutes(root, services.ExchangeRate)
}
