package disburse

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	salaries := r.Group("/salaries")
	{
		salaries.POST("/pay", h.Pay)
		salaries.POST("/bulk-action", h.BulkAction)
		salaries.POST("/process-award-payments", h.ProcessAwardPayments)
	}
}
