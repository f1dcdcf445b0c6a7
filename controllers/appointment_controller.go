package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Shetty-ANANYA-Raju/NutriVista/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Svc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Svc: svc}
}

type BookAppointmentInput struct {
	DoctorID uint      `json:"doctorId" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Reason   string    `json:"reason" binding:"required"`
}

func (h *AppointmentController) Book(c *gin.Context) {
	userID := c.GetUint("userID")

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	appt, err := h.Svc.Book(userID, input.DoctorID, input.Date, input.Reason)
	if err != nil {
		if errors.Is(err, services.ErrDoctorNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

func (h *AppointmentController) ListForUser(c *gin.Context) {
	userID := c.GetUint("userID")

	appts, err := h.Svc.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, appts)
}
