package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	testutils "github.com/hackday-labs/hackathon-scoreboard/api/controllers/testing"
	"github.com/hackday-labs/hackathon-scoreboard/api/models"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRequest() models.SeedRequest {
	return models.SeedRequest{
		Teams: []models.SeedTeam{
			{
				ID:          "seed-1",
				Name:        "Seeded One",
				ProjectName: "Recycler",
				Scores: []models.ScoreSubmitRequest{
					{Round: "Round 1", Judge: "Judge A", Categories: fiveCategories(16, 16, 16, 16, 16)},
					{Round: "Round 2", Judge: "Judge A", Categories: fiveCategories(18, 18, 18, 18, 18)},
				},
			},
			{
				ID:          "seed-2",
				Name:        "Seeded Two",
				ProjectName: "Wayfinder",
			},
		},
	}
}

func TestSeedTeams(t *testing.T) {
	router := setupScoreboardRouter(t)

	t.Run("Happy path - seed computes totals server-side", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", seedRequest(), nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var seeded models.SeedResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &seeded))
		assert.Equal(t, 2, seeded.SeededCount)

		get := testutils.PerformRequest(router, http.MethodGet, "/api/teams/seed-1", nil, nil)
		require.Equal(t, http.StatusOK, get.Code)

		var team models.TeamResponse
		require.NoError(t, json.Unmarshal(get.Body.Bytes(), &team))
		require.Len(t, team.Scores, 2)
		assert.Equal(t, 80, team.Scores[0].TotalScore)
		assert.Equal(t, 90, team.Scores[1].TotalScore)
		assert.Equal(t, 170, team.CombinedTotalScore)
	})

	t.Run("Happy path - seeding twice leaves no duplicates", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", seedRequest(), nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		list := testutils.PerformRequest(router, http.MethodGet, "/api/teams", nil, nil)
		require.Equal(t, http.StatusOK, list.Code)

		var teams []models.TeamResponse
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &teams))
		assert.Len(t, teams, 2)
	})

	t.Run("Unhappy path - seed rejects an invalid score", func(t *testing.T) {
		req := seedRequest()
		req.Teams[0].Scores[0].Categories[1].Score = 21
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", req, nil)
		require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	})

	t.Run("Unhappy path - seed rejects a team without an id", func(t *testing.T) {
		req := seedRequest()
		req.Teams[1].ID = ""
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", req, nil)
		require.Equal(t, http.StatusBadRequest, res.Code, res.Body.String())
	})
}

func TestAdminAuth(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "test-admin-token")

	client := newLocalstackClient(t)
	teamStorage := &storage.DynamoTeamStorage{Client: client, TableName: testTeamsTable}
	feedbackStorage := &storage.DynamoFeedbackStorage{Client: client, TableName: testFeedbackTable}
	t.Cleanup(func() { cleanupTeamTable(t, client) })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAdminController(teamStorage, feedbackStorage).RegisterRoutes(router)

	t.Run("Unhappy path - missing token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", seedRequest(), nil)
		require.Equal(t, http.StatusUnauthorized, res.Code, res.Body.String())
	})

	t.Run("Unhappy path - wrong token", func(t *testing.T) {
		headers := map[string]string{"x-admin-token": "nope"}
		res := testutils.PerformRequest(router, http.MethodDelete, "/api/admin/feedback", nil, headers)
		require.Equal(t, http.StatusUnauthorized, res.Code, res.Body.String())
	})

	t.Run("Happy path - valid token reaches the handler", func(t *testing.T) {
		headers := map[string]string{"x-admin-token": "test-admin-token"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/seed", seedRequest(), headers)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		var seeded models.SeedResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &seeded))
		assert.Equal(t, 2, seeded.SeededCount)
	})
}

func TestDeleteTeam(t *testing.T) {
	router := setupScoreboardRouter(t)
	createTeam(t, router, "doomed", "Doomed Team")

	res := testutils.PerformRequest(router, http.MethodDelete, "/api/admin/teams/doomed", nil, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	get := testutils.PerformRequest(router, http.MethodGet, "/api/teams/doomed", nil, nil)
	require.Equal(t, http.StatusNotFound, get.Code)
}

func TestMetaConfig(t *testing.T) {
	router := setupScoreboardRouter(t)

	res := testutils.PerformRequest(router, http.MethodGet, "/api/meta/config", nil, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var conf models.ConfigResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &conf))
	assert.Equal(t, []string{"Round 1", "Round 2", "Final"}, conf.Rounds)
	assert.Len(t, conf.Categories, 5)
	assert.Equal(t, 20, conf.MaxCategoryScore)
	assert.Equal(t, 5, conf.MaxRatingScore)
	assert.Contains(t, conf.Reactions, "excited")
}
