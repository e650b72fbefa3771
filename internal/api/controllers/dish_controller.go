package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simsem/internal/models/request_models"
	"simsem/internal/services"
	"simsem/pkg/utils"
)

type DishController struct {
	dishService services.DishServiceInterface
}

func NewDishController(dishService services.DishServiceInterface) *DishController {
	return &DishController{
		dishService: dishService,
	}
}

func (d *DishController) Search(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	dishes, err := d.dishService.Search(c.Request.Context(), category, c.Query("q"), c.Query("dietary"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dishes, "Dishes fetched")
}

func (d *DishController) Create(c *gin.Context) {
	var req request_models.CustomDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dish, err := d.dishService.CreateDish(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dish, "Dish created")
}
