package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Shetty-ANANYA-Raju/NutriVista/catalog"
	"github.com/Shetty-ANANYA-Raju/NutriVista/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	Svc *services.FoodLogService
	Hub *services.RealtimeHub
}

func NewFoodLogController(svc *services.FoodLogService, hub *services.RealtimeHub) *FoodLogController {
	return &FoodLogController{Svc: svc, Hub: hub}
}

type LogFoodInput struct {
	Text string `json:"text" binding:"required"`
}

// LogFood interprets the chat message and records one intake entry. The
// three failure modes stay distinct for the client: malformed request
// (400 before parsing), unrecognized food (400 with the canonical message)
// and storage trouble (503, retryable).
func (h *FoodLogController) LogFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "text is required"})
		return
	}

	entry, err := h.Svc.LogIntake(userID, input.Text)
	if err != nil {
		if errors.Is(err, catalog.ErrNotRecognized) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Food item not recognized"})
			return
		}
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Storage unavailable, please try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	if h.Hub != nil {
		h.Hub.Broadcast(userID, gin.H{"kind": "foodlog.created", "entry": entry})
	}

	c.JSON(http.StatusOK, entry)
}

func (h *FoodLogController) GetSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	totals, err := h.Svc.Summarize(userID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"msg": "Storage unavailable, please try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, totals)
}
