package chat_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/services"
)

// SendMessage godoc
// @Summary Ask the analytics assistant
// @Description Records the question and returns the assistant's reply after a short think delay. Blank input is ignored.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body models.SendChatMessageRequest true "Question"
// @Success 200 {object} models.ApiResponse{data=models.ChatMessage}
// @Failure 400 {object} models.ApiResponse
// @Router /chat/messages [post]
func SendMessage(d *services.Dashboard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SendChatMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
			return
		}
		log.Printf("[chat.send] start len=%d", len(req.Text))

		reply, err := d.Ask(c.Request.Context(), req.Text)
		if err != nil {
			if c.Request.Context().Err() != nil {
				log.Printf("[chat.send] client went away: %v", err)
				return
			}
			log.Printf("[chat.send] ERROR err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to answer question"))
			return
		}
		if reply == nil {
			log.Printf("[chat.send] respond 200 blank input ignored")
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Empty message ignored", nil))
			return
		}

		log.Printf("[chat.send] respond 200 intent=%s", reply.Intent)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Reply generated", reply))
	}
}
