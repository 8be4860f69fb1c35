package notifications

import "github.com/gin-gonic/gin"

func RegisterNotificationsRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", GetNotifications)
	r.POST("/notifications/:id/read", MarkAsRead)
	r.DELETE("/notifications/:id", DeleteNotification)
}
