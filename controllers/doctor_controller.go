package controllers

import (
	"net/http"

	"github.com/Shetty-ANANYA-Raju/NutriVista/services"

	"github.com/gin-gonic/gin"
)

type DoctorController struct {
	Svc *services.DoctorService
}

func NewDoctorController(svc *services.DoctorService) *DoctorController {
	return &DoctorController{Svc: svc}
}

func (h *DoctorController) ListDoctors(c *gin.Context) {
	doctors, err := h.Svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}
