package allowance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	allowances := r.Group("/allowances")
	{
		allowances.GET("", h.GetAll)
		allowances.POST("", h.Create)
		allowances.DELETE("/:id", h.Delete)
		allowances.POST("/assign", h.Assign)
		allowances.DELETE("/assign/:employeeId/:settingName", h.Unassign)
	}
}
