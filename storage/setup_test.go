package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
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

func cleanupTable(t *testing.T, client *dynamodb.Client, tableName string, keyAttrs ...string) {
	t.Helper()
	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		t.Fatalf("cleanup scan failed: %v", err)
	}
	for _, item := range out.Items {
		key := map[string]types.AttributeValue{}
		for _, attr := range keyAttrs {
			key[attr] = item[attr]
		}
		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(tableName),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup delete failed: %v", err)
		}
	}
}
