package controllers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gin-gonic/gin"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
	"github.com/hackday-labs/hackathon-scoreboard/storage"
	"github.com/sirupsen/logrus"
)

const (
	testTeamsTable    = "ScoreboardTeams"
	testFeedbackTable = "ScoreboardFeedback"
)

//nolint:staticcheck
func newLocalstackClient(t *testing.T) *dynamodb.Client {
	t.Helper()
	logging.Log = logrus.New()

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: "http://localhost:4566", HostnameImmutable: true}, nil
			}),
		),
	)
	if err != nil {
		t.Fatalf("failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func cleanupTeamTable(t *testing.T, client *dynamodb.Client) {
	t.Helper()
	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(testTeamsTable),
	})
	if err != nil {
		t.Fatalf("cleanup scan failed: %v", err)
	}
	for _, item := range out.Items {
		key := map[string]types.AttributeValue{
			"PK": item["PK"],
		}
		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(testTeamsTable),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup delete failed: %v", err)
		}
	}
}

func cleanupFeedbackTable(t *testing.T, client *dynamodb.Client) {
	t.Helper()
	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(testFeedbackTable),
	})
	if err != nil {
		t.Fatalf("cleanup scan failed: %v", err)
	}
	for _, item := range out.Items {
		key := map[string]types.AttributeValue{
			"PK": item["PK"],
			"SK": item["SK"],
		}
		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(testFeedbackTable),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup delete failed: %v", err)
		}
	}
}

// setupScoreboardRouter wires every controller against localstack tables.
// Admin handlers are registered without the token middleware, like the rest;
// the token gate itself is covered by TestAdminAuth.
func setupScoreboardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	client := newLocalstackClient(t)

	teamStorage := &storage.DynamoTeamStorage{
		Client:    client,
		TableName: testTeamsTable,
	}
	feedbackStorage := &storage.DynamoFeedbackStorage{
		Client:    client,
		TableName: testFeedbackTable,
	}

	t.Cleanup(func() {
		cleanupTeamTable(t, client)
		cleanupFeedbackTable(t, client)
	})

	teamController := NewTeamController(teamStorage)
	scoreController := NewScoreController(teamStorage)
	feedbackController := NewFeedbackController(teamStorage, feedbackStorage)
	leaderboardController := NewLeaderboardController(teamStorage)
	adminController := NewAdminController(teamStorage, feedbackStorage)
	metaController := NewMetaController()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/api/teams", teamController.getAll)
	r.GET("/api/teams/:id", teamController.get)
	r.POST("/api/teams", teamController.create)
	r.POST("/api/teams/:id/scores", scoreController.submitScore)
	r.POST("/api/teams/:id/feedback", feedbackController.submitTeamFeedback)
	r.POST("/api/feedback", feedbackController.submitEventFeedback)
	r.GET("/api/feedback", feedbackController.getEventFeedback)
	r.GET("/api/feedback/event/:eventId/team/:teamId", feedbackController.getTeamFeedback)
	r.GET("/api/leaderboard", leaderboardController.getLeaderboard)
	r.POST("/api/seed", adminController.seed)
	r.DELETE("/api/admin/feedback", adminController.wipeFeedback)
	r.DELETE("/api/admin/teams/:id", adminController.deleteTeam)
	r.GET("/api/meta/config", metaController.getConfig)

	return r
}
