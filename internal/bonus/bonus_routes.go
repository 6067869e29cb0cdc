package bonus

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	bonuses := r.Group("/bonuses")
	{
		bonuses.GET("/settings", h.GetSettings)
		bonuses.POST("/settings", h.CreateSetting)
		bonuses.POST("/apply-eid", h.ApplyEid)
		bonuses.POST("/apply-festival", h.ApplyFestival)
		bonuses.POST("/apply", h.ApplyManual)
	}
}
