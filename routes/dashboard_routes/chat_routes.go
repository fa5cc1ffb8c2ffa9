package dashboard_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/controllers/chat_controller"
	"github.com/mattwilkerson1121/Asinsights/services"
)

func SetupChatRoutes(rg *gin.RouterGroup, d *services.Dashboard) {
	chat := rg.Group("/chat")

	chat.GET("/messages", chat_controller.GetMessages(d))
	chat.POST("/messages", chat_controller.SendMessage(d))
	chat.POST("/view-in-dashboard", chat_controller.ViewInDashboard(d))
}
