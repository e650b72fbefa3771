package controllers

import (
	"github.com/gin-gonic/gin"

	"simsem/internal/services"
	"simsem/pkg/utils"
)

type LanguageController struct {
	languageService services.LanguageServiceInterface
}

func NewLanguageController(languageService services.LanguageServiceInterface) *LanguageController {
	return &LanguageController{
		languageService: languageService,
	}
}

func (l *LanguageController) List(c *gin.Context) {
	languages, err := l.languageService.ListLanguages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, languages, "Languages fetched")
}
