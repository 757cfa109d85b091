package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/hackday-labs/hackathon-scoreboard/scoring"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

// appendAttempts bounds the optimistic-concurrency retry loop for appends that
// race with other judges scoring the same team.
const appendAttempts = 3

type ScoreController struct {
	teams storage.TeamStorage
}

func NewScoreController(teams storage.TeamStorage) *ScoreController {
	return &ScoreController{teams: teams}
}

func (c *ScoreController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/teams/:id/scores", c.submitScore)
}

// submitScore godoc
// @Summary Submit a judge score for a team
// @Description Validates the five category scores, appends the score and recomputes the combined total in one conditional write
// @Tags scores
// @Accept json
// @Produce json
// @Param id path string true "Team id"
// @Param score body models.ScoreSubmitRequest true "Score submission"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse "Invalid score data"
// @Failure 404 {object} models.ErrorResponse "Team not found"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/teams/{id}/scores [post]
func (c *ScoreController) submitScore(g *gin.Context) {
	id := g.Param("id")

	var req models.ScoreSubmitRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	// Read-validate-append-recompute has to happen against the latest copy of
	// the team, so the whole cycle retries on a version conflict.
	for attempt := 0; attempt < appendAttempts; attempt++ {
		team, err := c.teams.Get(g.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrTeamNotFound) {
				g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
				return
			}
			logging.Log.Errorf("SCORE: failed to get team %s: %v", id, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}

		candidate := models.TransformScoreToStorage(&req, time.Now().UTC())
		if err := scoring.ValidateScore(&candidate); err != nil {
			logging.Log.Warnf("SCORE: rejected score for team %s: %v", id, err)
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}

		team.Scores = append(team.Scores, candidate)
		team.CombinedTotalScore = scoring.CombinedTotal(team.Scores)

		err = c.teams.UpdateVersioned(g.Request.Context(), team)
		if err == nil {
			logging.Log.Infof("SCORE: recorded %s score %d for team %s", candidate.Round, candidate.TotalScore, id)
			g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
			return
		}
		if errors.Is(err, storage.ErrVersionConflict) {
			logging.Log.Warnf("SCORE: concurrent update on team %s, retrying (attempt %d)", id, attempt+1)
			continue
		}
		logging.Log.Errorf("SCORE: failed to store score for team %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save score"})
		return
	}

	logging.Log.Errorf("SCORE: gave up after %d conflicting updates on team %s", appendAttempts, id)
	g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save score, team is being updated concurrently"})
}
