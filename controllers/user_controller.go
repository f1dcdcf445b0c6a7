package controllers

import (
	"net/http"

	"github.com/Shetty-ANANYA-Raju/NutriVista/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := h.Svc.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	user, err := h.Svc.UpdateGoals(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
