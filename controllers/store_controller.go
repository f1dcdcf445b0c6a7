package controllers

import (
	"net/http"

	"github.com/Shetty-ANANYA-Raju/NutriVista/services"

	"github.com/gin-gonic/gin"
)

type StoreController struct {
	Svc *services.StoreService
}

func NewStoreController(svc *services.StoreService) *StoreController {
	return &StoreController{Svc: svc}
}

func (h *StoreController) ListProducts(c *gin.Context) {
	products, err := h.Svc.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *StoreController) ListRecipes(c *gin.Context) {
	recipes, err := h.Svc.ListRecipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}
