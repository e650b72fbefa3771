package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simsem/internal/services"
	"simsem/pkg/utils"
)

type IbanController struct {
	ibanService services.IbanServiceInterface
}

func NewIbanController(ibanService services.IbanServiceInterface) *IbanController {
	return &IbanController{
		ibanService: ibanService,
	}
}

func (i *IbanController) Verify(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Wizard ID is required")
		return
	}

	status, err := i.ibanService.Verify(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Verification completed")
}

func (i *IbanController) Status(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Wizard ID is required")
		return
	}

	status, err := i.ibanService.Status(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Verification status fetched")
}
