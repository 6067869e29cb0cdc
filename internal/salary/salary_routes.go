package salary

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	salaries := r.Group("/salaries")
	{
		salaries.GET("", h.GetAll)
		salaries.GET("/:employeeId", h.GetOne)
		salaries.POST("/calculate", h.Calculate)
		salaries.POST("/cancel", h.Cancel)
	}
}
