package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/scoring"
)

// MetaController serves the fixed domain constants. Rounds, categories and
// reactions are closed enumerations, so there is deliberately no write surface.
type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

func (c *MetaController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/meta/config", c.getConfig)
}

// @Summary Get the fixed scoring configuration
// @Tags meta
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Router /api/meta/config [get]
func (c *MetaController) getConfig(g *gin.Context) {
	g.JSON(http.StatusOK, models.ConfigResponse{
		Rounds:             scoring.Rounds,
		Categories:         scoring.Categories,
		MaxCategoryScore:   scoring.MaxCategoryScore,
		FeedbackCategories: scoring.FeedbackCategories,
		MaxRatingScore:     scoring.MaxRatingScore,
		Reactions:          scoring.Reactions,
	})
}
