package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
	"github.com/SscSPs/money_ops/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validationsOnce sync.Once

// registerValidations installs the request validation tags on gin's validator engine.
func registerValidations() {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator; custom tags unavailable")
			return
		}
		if err := dto.RegisterValidations(v); err != nil {
			slog.Error("Failed to register request validations", slog.String("error", err.Error()))
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiMiddleware is applied to the /api/v1 group only.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, apiMiddleware ...gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1", apiMiddleware...)
	RegisterMoneyRoutes(v1, services.GrowthDiscount, services.Transfer)
}
