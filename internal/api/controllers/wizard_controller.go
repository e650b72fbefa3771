package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"simsem/internal/models/request_models"
	"simsem/internal/services"
	"simsem/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// Start godoc
// @Summary Start a wizard
// @Description Creates a new tour or signup wizard draft at its first step
// @Tags Wizards
// @Accept json
// @Produce json
// @Param request body request_models.StartWizardRequest true "Wizard kind and optional tour type"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wizards [post]
func (w *WizardController) Start(c *gin.Context) {
	var req request_models.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	wizard, err := w.wizardService.StartWizard(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wizard, "Wizard started")
}

func (w *WizardController) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Wizard ID is required")
		return
	}

	wizard, err := w.wizardService.GetWizard(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wizard, "Wizard fetched")
}

// SaveStep godoc
// @Summary Save one step's form data
// @Description Stores and eagerly validates the payload for a named step
// @Tags Wizards
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wizards/{id}/steps/{step} [put]
func (w *WizardController) SaveStep(c *gin.Context) {
	id := c.Param("id")
	step := c.Param("step")

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Step payload is required")
		return
	}

	result, err := w.wizardService.SaveStep(c.Request.Context(), id, step, json.RawMessage(payload))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Step saved")
}

func (w *WizardController) Next(c *gin.Context) {
	id := c.Param("id")

	result, err := w.wizardService.Next(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if len(result.FieldErrors) > 0 {
		utils.RespondValidation(c, result.FieldErrors)
		return
	}

	if result.Published {
		utils.RespondSuccess(c, result, "Wizard published")
		return
	}
	utils.RespondSuccess(c, result, "Advanced to next step")
}

func (w *WizardController) Back(c *gin.Context) {
	id := c.Param("id")

	wizard, err := w.wizardService.Back(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wizard, "Moved to previous step")
}

func (w *WizardController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	wizards, err := w.wizardService.ListWizards(c.Request.Context(), c.Query("kind"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, wizards, "Wizards fetched")
}

func (w *WizardController) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Wizard ID is required")
		return
	}

	if err := w.wizardService.DeleteWizard(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wizard deleted")
}

func (w *WizardController) AddCustomDish(c *gin.Context) {
	id := c.Param("id")

	var req request_models.CustomDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dish, err := w.wizardService.AddCustomDish(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dish, "Custom dish added")
}
