package award

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	awards := r.Group("/awards")
	{
		awards.GET("", h.GetAwards)
		awards.POST("", h.CreateAward)
		awards.GET("/grants", h.GetGrants)
		awards.POST("/grants", h.Grant)
		awards.PATCH("/grants/:id/status", h.UpdateStatus)
	}
}
