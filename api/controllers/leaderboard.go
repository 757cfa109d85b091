package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/hackday-labs/hackathon-scoreboard/scoring"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type LeaderboardController struct {
	teams storage.TeamStorage
}

func NewLeaderboardController(teams storage.TeamStorage) *LeaderboardController {
	return &LeaderboardController{teams: teams}
}

func (c *LeaderboardController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/leaderboard", c.getLeaderboard)
}

// getLeaderboard godoc
// @Summary Ranked leaderboard for a round
// @Description Ranks teams by cumulative score over the round prefix ending at the selected round, with per-category averages for that round
// @Tags leaderboard
// @Produce json
// @Param round query string false "Round name, defaults to the first round"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/leaderboard [get]
func (c *LeaderboardController) getLeaderboard(g *gin.Context) {
	round := g.Query("round")
	if round == "" {
		round = scoring.Rounds[0]
	}
	if _, ok := scoring.RoundIndex(round); !ok {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("unknown round %q", round)})
		return
	}

	teams, err := c.teams.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("LEADERBOARD: failed to load teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not load teams"})
		return
	}

	standings := scoring.Rank(teams, round)
	g.JSON(http.StatusOK, models.TransformStandings(round, standings))
}
