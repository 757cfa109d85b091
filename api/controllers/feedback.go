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
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type FeedbackController struct {
	teams    storage.TeamStorage
	feedback storage.FeedbackStorage
}

func NewFeedbackController(teams storage.TeamStorage, feedback storage.FeedbackStorage) *FeedbackController {
	return &FeedbackController{teams: teams, feedback: feedback}
}

func (c *FeedbackController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/teams/:id/feedback", c.submitTeamFeedback)

	group := engine.Group("/api/feedback")
	group.POST("", c.submitEventFeedback)
	group.GET("", c.getEventFeedback)
	group.GET("/event/:eventId/team/:teamId", c.getTeamFeedback)
}

// submitTeamFeedback godoc
// @Summary Append attendee feedback to a team
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Team id"
// @Param feedback body models.FeedbackSubmitRequest true "Feedback submission"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams/{id}/feedback [post]
func (c *FeedbackController) submitTeamFeedback(g *gin.Context) {
	id := g.Param("id")

	var req models.FeedbackSubmitRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	req.TeamID = id

	for attempt := 0; attempt < appendAttempts; attempt++ {
		team, err := c.teams.Get(g.Request.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrTeamNotFound) {
				g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
				return
			}
			logging.Log.Errorf("FEEDBACK: failed to get team %s: %v", id, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
			return
		}

		candidate, ok := c.buildFeedback(g, &req)
		if !ok {
			return
		}

		team.Feedback = append(team.Feedback, candidate)

		err = c.teams.UpdateVersioned(g.Request.Context(), team)
		if err == nil {
			logging.Log.Infof("FEEDBACK: recorded feedback %s for team %s", candidate.ID, id)
			g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
			return
		}
		if errors.Is(err, storage.ErrVersionConflict) {
			logging.Log.Warnf("FEEDBACK: concurrent update on team %s, retrying (attempt %d)", id, attempt+1)
			continue
		}
		logging.Log.Errorf("FEEDBACK: failed to store feedback for team %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save feedback"})
		return
	}

	logging.Log.Errorf("FEEDBACK: gave up after %d conflicting updates on team %s", appendAttempts, id)
	g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save feedback, team is being updated concurrently"})
}

// submitEventFeedback godoc
// @Summary Submit attendee feedback for the event
// @Description Records event-level feedback, optionally targeting a specific team
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body models.FeedbackSubmitRequest true "Feedback submission"
// @Success 201 {object} models.FeedbackResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/feedback [post]
func (c *FeedbackController) submitEventFeedback(g *gin.Context) {
	var req models.FeedbackSubmitRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.EventID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "eventId is required"})
		return
	}

	candidate, ok := c.buildFeedback(g, &req)
	if !ok {
		return
	}

	if err := c.feedback.Put(g.Request.Context(), &candidate); err != nil {
		logging.Log.Errorf("FEEDBACK: failed to store event feedback: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not save feedback"})
		return
	}

	logging.Log.Infof("FEEDBACK: recorded event feedback %s for event %s", candidate.ID, candidate.EventID)
	g.JSON(http.StatusCreated, models.TransformFeedbackFromStorage(&candidate))
}

// getEventFeedback godoc
// @Summary Get all feedback for an event
// @Tags feedback
// @Produce json
// @Param eventId query string true "Event id"
// @Success 200 {array} models.FeedbackResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/feedback [get]
func (c *FeedbackController) getEventFeedback(g *gin.Context) {
	eventID := g.Query("eventId")
	if eventID == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "eventId is required"})
		return
	}

	feedback, err := c.feedback.GetByEvent(g.Request.Context(), eventID)
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to retrieve feedback for event %s: %v", eventID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not retrieve feedback"})
		return
	}

	responses := make([]models.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		responses = append(responses, models.TransformFeedbackFromStorage(f))
	}
	g.JSON(http.StatusOK, responses)
}

// getTeamFeedback godoc
// @Summary Get feedback for a specific team within an event
// @Tags feedback
// @Produce json
// @Param eventId path string true "Event id"
// @Param teamId path string true "Team id"
// @Success 200 {array} models.FeedbackResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/feedback/event/{eventId}/team/{teamId} [get]
func (c *FeedbackController) getTeamFeedback(g *gin.Context) {
	eventID := g.Param("eventId")
	teamID := g.Param("teamId")

	feedback, err := c.feedback.GetByEventAndTeam(g.Request.Context(), eventID, teamID)
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to retrieve feedback for event %s team %s: %v", eventID, teamID, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not retrieve feedback"})
		return
	}

	responses := make([]models.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		responses = append(responses, models.TransformFeedbackFromStorage(f))
	}
	g.JSON(http.StatusOK, responses)
}

// buildFeedback validates the submission and stamps id and timestamp. On
// failure it writes the error response and reports false.
func (c *FeedbackController) buildFeedback(g *gin.Context, req *models.FeedbackSubmitRequest) (storage.Feedback, bool) {
	id, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to generate feedback id: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not generate feedback id"})
		return storage.Feedback{}, false
	}

	candidate := models.TransformFeedbackToStorage(req, id, time.Now().UTC())
	if err := scoring.ValidateFeedback(&candidate); err != nil {
		logging.Log.Warnf("FEEDBACK: rejected feedback: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return storage.Feedback{}, false
	}
	return candidate, true
}
