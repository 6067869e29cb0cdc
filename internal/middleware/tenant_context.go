package middleware

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/contextutil"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantContext reads the identity headers injected by the gateway after it
// has authenticated the caller. Authentication itself lives outside this
// service; we only require a valid company scope.
func TenantContext(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetHeader("X-Company-ID")
		if _, err := uuid.Parse(companyID); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "X-Company-ID header is required", nil)
			c.Abort()
			return
		}

		actorID := c.GetHeader("X-Actor-ID")

		c.Set("company_id", companyID)
		c.Set("actor_id", actorID)

		reqLogger := logger.With(
			zap.String("request_id", c.GetString("request_id")),
			zap.String("company_id", companyID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithCompanyID(ctx, companyID)
		ctx = contextutil.WithActorID(ctx, actorID)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
