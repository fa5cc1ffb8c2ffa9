package chat_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// GetMessages godoc
// @Summary Get the chat transcript
// @Tags Chat
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.ChatMessage}
// @Router /chat/messages [get]
func GetMessages(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages := d.Messages()
		log.Printf("[chat.messages] respond 200 count=%d", len(messages))
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Messages retrieved successfully", messages))
	}
}
