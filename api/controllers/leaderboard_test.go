package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	testutils "github.com/hackday-labs/hackathon-scoreboard/api/controllers/testing"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitScore(t *testing.T, router *gin.Engine, teamID, round string, perCategory int) {
	t.Helper()
	req := models.ScoreSubmitRequest{
		Round:      round,
		Judge:      "Judge A",
		Categories: fiveCategories(perCategory, perCategory, perCategory, perCategory, perCategory),
	}
	res := testutils.PerformRequest(router, http.MethodPost, "/api/teams/"+teamID+"/scores", req, nil)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
}

func TestLeaderboard(t *testing.T) {
	router := setupScoreboardRouter(t)

	createTeam(t, router, "t-alpha", "Alpha")
	createTeam(t, router, "t-beta", "Beta")
	createTeam(t, router, "t-gamma", "Gamma")

	// Round 1: Alpha 80, Beta 90, Gamma unscored
	submitScore(t, router, "t-alpha", "Round 1", 16)
	submitScore(t, router, "t-beta", "Round 1", 18)
	// Round 2: Alpha 90, Beta 70, Gamma 100
	submitScore(t, router, "t-alpha", "Round 2", 18)
	submitScore(t, router, "t-beta", "Round 2", 14)
	submitScore(t, router, "t-gamma", "Round 2", 20)

	t.Run("Happy path - round one standings", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard?round=Round%201", nil, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var board models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &board))
		assert.Equal(t, "Round 1", board.Round)
		assert.Equal(t, 100, board.MaxPossible)
		require.Len(t, board.Entries, 3)

		assert.Equal(t, "Beta", board.Entries[0].TeamName)
		assert.Equal(t, 90, board.Entries[0].CumulativeScore)
		assert.Equal(t, 1, board.Entries[0].Rank)
		assert.True(t, board.Entries[0].HasRoundScore)

		assert.Equal(t, "Alpha", board.Entries[1].TeamName)

		// Gamma has no round one scores: no data, cumulative zero
		assert.Equal(t, "Gamma", board.Entries[2].TeamName)
		assert.False(t, board.Entries[2].HasRoundScore)
		assert.Equal(t, 0, board.Entries[2].CumulativeScore)
	})

	t.Run("Happy path - cumulative standings over two rounds", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard?round=Round%202", nil, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var board models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &board))
		assert.Equal(t, 200, board.MaxPossible)
		require.Len(t, board.Entries, 3)

		// Alpha 80+90=170, Beta 90+70=160, Gamma 0+100=100
		assert.Equal(t, "Alpha", board.Entries[0].TeamName)
		assert.Equal(t, 170, board.Entries[0].CumulativeScore)
		assert.Equal(t, "Beta", board.Entries[1].TeamName)
		assert.Equal(t, 160, board.Entries[1].CumulativeScore)
		assert.Equal(t, "Gamma", board.Entries[2].TeamName)
		assert.Equal(t, 100, board.Entries[2].CumulativeScore)

		require.Len(t, board.Entries[0].CategoryAverages, 5)
		for _, c := range board.Entries[0].CategoryAverages {
			assert.Equal(t, 18, c.Average)
		}
	})

	t.Run("Happy path - ties order by team name", func(t *testing.T) {
		// Gamma matches Beta's round one score; tie resolves alphabetically
		submitScore(t, router, "t-gamma", "Round 1", 18)

		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard?round=Round%201", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var board models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &board))
		require.Len(t, board.Entries, 3)
		assert.Equal(t, "Beta", board.Entries[0].TeamName)
		assert.Equal(t, "Gamma", board.Entries[1].TeamName)
		assert.Equal(t, board.Entries[0].CumulativeScore, board.Entries[1].CumulativeScore)
	})

	t.Run("Happy path - defaults to the first round", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var board models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &board))
		assert.Equal(t, "Round 1", board.Round)
	})

	t.Run("Unhappy path - unknown round", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard?round=Semis", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Code)
	})
}
