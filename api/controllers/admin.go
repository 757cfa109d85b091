package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/api/transport"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/hackday-labs/hackathon-scoreboard/scoring"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type AdminController struct {
	teams    storage.TeamStorage
	feedback storage.FeedbackStorage
}

func NewAdminController(teams storage.TeamStorage, feedback storage.FeedbackStorage) *AdminController {
	return &AdminController{teams: teams, feedback: feedback}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/seed", transport.AdminAuthMiddleware(), c.seed)

	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())
	group.DELETE("/feedback", c.wipeFeedback)
	group.DELETE("/teams/:id", c.deleteTeam)
}

// @Security AdminToken
// seed godoc
// @Summary Seed teams
// @Description Idempotent upsert by team id; score totals are recomputed server-side
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SeedRequest true "Teams to seed"
// @Success 200 {object} models.SeedResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/seed [post]
func (c *AdminController) seed(g *gin.Context) {
	var req models.SeedRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	now := time.Now().UTC()
	seeded := 0
	for i := range req.Teams {
		seed := &req.Teams[i]
		if seed.ID == "" || seed.Name == "" {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "every seeded team needs an id and a name"})
			return
		}

		team := &storage.Team{
			ID:          seed.ID,
			Name:        seed.Name,
			ProjectName: seed.ProjectName,
			Members:     seed.Members,
			Scores:      make([]storage.Score, 0, len(seed.Scores)),
			Feedback:    []storage.Feedback{},
		}
		for j := range seed.Scores {
			candidate := models.TransformScoreToStorage(&seed.Scores[j], now)
			if err := scoring.ValidateScore(&candidate); err != nil {
				logging.Log.Warnf("ADMIN: rejected seed score for team %s: %v", seed.ID, err)
				g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
				return
			}
			team.Scores = append(team.Scores, candidate)
		}
		team.CombinedTotalScore = scoring.CombinedTotal(team.Scores)

		if err := c.teams.Put(g.Request.Context(), team); err != nil {
			logging.Log.Errorf("ADMIN: failed to seed team %s: %v", seed.ID, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}
		seeded++
	}

	logging.Log.Infof("ADMIN: seeded %d teams", seeded)
	g.JSON(http.StatusOK, models.SeedResponse{SeededCount: seeded, Message: "Database seeded successfully"})
}

// @Security AdminToken
// wipeFeedback godoc
// @Summary Delete all event-level feedback
// @Tags admin
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/feedback [delete]
func (c *AdminController) wipeFeedback(g *gin.Context) {
	if err := c.feedback.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to wipe feedback: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	logging.Log.Info("ADMIN: wiped all event feedback")
	g.JSON(http.StatusOK, models.MessageResponse{Message: "All feedback deleted"})
}

// @Security AdminToken
// deleteTeam godoc
// @Summary Delete a team by id
// @Tags admin
// @Produce json
// @Param id path string true "Team id"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/teams/{id} [delete]
func (c *AdminController) deleteTeam(g *gin.Context) {
	id := g.Param("id")
	if id == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing team id"})
		return
	}
	if err := c.teams.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete team %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "team deleted"})
}
