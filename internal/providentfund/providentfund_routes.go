package providentfund

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	accounts := r.Group("/provident-fund")
	{
		accounts.GET("", h.GetAll)
		accounts.POST("", h.Open)
		accounts.GET("/:employeeId", h.GetByEmployee)
		accounts.PUT("/:employeeId/percentage", h.SetPercentage)
	}
}
