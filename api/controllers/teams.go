package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type TeamController struct {
	storage storage.TeamStorage
}

func NewTeamController(s storage.TeamStorage) *TeamController {
	return &TeamController{storage: s}
}

func (c *TeamController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/teams")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", c.create)
}

// @Summary Get all teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.TeamResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams [get]
func (c *TeamController) getAll(g *gin.Context) {
	teams, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("TEAM: failed to get all teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]models.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, models.TransformTeamFromStorage(t))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a team by id
// @Tags teams
// @Produce json
// @Param id path string true "Team id"
// @Success 200 {object} models.TeamResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams/{id} [get]
func (c *TeamController) get(g *gin.Context) {
	id := g.Param("id")

	team, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrTeamNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found"})
			return
		}
		logging.Log.Errorf("TEAM: failed to get team %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusOK, models.TransformTeamFromStorage(team))
}

// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team object"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/teams [post]
func (c *TeamController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("TEAM: invalid create team request: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if req.ID == "" || req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "id and name are required"})
		return
	}

	team := &storage.Team{
		ID:          req.ID,
		Name:        req.Name,
		ProjectName: req.ProjectName,
		Members:     req.Members,
		Scores:      []storage.Score{},
		Feedback:    []storage.Feedback{},
	}

	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		if errors.Is(err, storage.ErrTeamAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "team with that id already exists"})
			return
		}
		logging.Log.Errorf("TEAM: failed to create team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("TEAM: created team %s (%s)", team.ID, team.Name)
	g.JSON(http.StatusCreated, models.TransformTeamFromStorage(team))
}
