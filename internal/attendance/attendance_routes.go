package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	attendances := r.Group("/attendances")
	{
		attendances.GET("", h.GetAll)
		attendances.POST("/clock-in", h.ClockIn)
		attendances.POST("/clock-out", h.ClockOut)
		attendances.POST("/manual", h.ManualEntry)
	}
}
