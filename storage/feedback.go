package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hackday-labs/hackathon-scoreboard/logging"
)

type FeedbackStorage interface {
	Put(ctx context.Context, feedback *Feedback) error
	GetByEvent(ctx context.Context, eventID string) ([]*Feedback, error)
	GetByEventAndTeam(ctx context.Context, eventID, teamID string) ([]*Feedback, error)
	DeleteAll(ctx context.Context) error
}

type DynamoFeedbackStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// FeedbackSortKey builds the SK so team-scoped entries cluster under a common
// prefix and event-wide entries sort separately.
func FeedbackSortKey(teamID, id string) string {
	if teamID == "" {
		return fmt.Sprintf("event#%s", id)
	}
	return fmt.Sprintf("team#%s#%s", teamID, id)
}

func (s *DynamoFeedbackStorage) Put(ctx context.Context, feedback *Feedback) error {
	feedback.SortKey = FeedbackSortKey(feedback.TeamID, feedback.ID)

	item, err := attributevalue.MarshalMap(feedback)
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to marshal feedback: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to store feedback: %v", err)
		return err
	}
	return nil
}

func (s *DynamoFeedbackStorage) GetByEvent(ctx context.Context, eventID string) ([]*Feedback, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :event"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event": &types.AttributeValueMemberS{Value: eventID},
		},
	}

	output, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to query feedback by event: %v", err)
		return nil, err
	}

	var feedback []*Feedback
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &feedback); err != nil {
		logging.Log.Errorf("FEEDBACK: failed to unmarshal feedback for event %s: %v", eventID, err)
		return nil, err
	}
	return feedback, nil
}

func (s *DynamoFeedbackStorage) GetByEventAndTeam(ctx context.Context, eventID, teamID string) ([]*Feedback, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :event AND begins_with(SK, :team)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":event": &types.AttributeValueMemberS{Value: eventID},
			":team":  &types.AttributeValueMemberS{Value: fmt.Sprintf("team#%s#", teamID)},
		},
	}

	output, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("FEEDBACK: failed to query feedback for team %s: %v", teamID, err)
		return nil, err
	}

	var feedback []*Feedback
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &feedback); err != nil {
		logging.Log.Errorf("FEEDBACK: failed to unmarshal feedback for team %s: %v", teamID, err)
		return nil, err
	}
	return feedback, nil
}

func (s *DynamoFeedbackStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK, SK"),
		})
		if err != nil {
			logging.Log.Errorf("FEEDBACK: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			if err := s.deleteBatch(ctx, writeRequests[i:end]); err != nil {
				return err
			}
			logging.Log.Infof("FEEDBACK: deleted batch of %d items", end-i)
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}

// deleteBatchAttempts bounds the re-submission of UnprocessedItems a throttled
// BatchWriteItem hands back.
const deleteBatchAttempts = 5

func (s *DynamoFeedbackStorage) deleteBatch(ctx context.Context, requests []types.WriteRequest) error {
	remaining := map[string][]types.WriteRequest{s.TableName: requests}

	for attempt := 0; attempt < deleteBatchAttempts; attempt++ {
		output, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: remaining,
		})
		if err != nil {
			logging.Log.Errorf("FEEDBACK: batch delete failed: %v", err)
			return err
		}
		if len(output.UnprocessedItems[s.TableName]) == 0 {
			return nil
		}
		remaining = output.UnprocessedItems
		logging.Log.Warnf("FEEDBACK: retrying %d unprocessed deletes", len(remaining[s.TableName]))
	}

	return fmt.Errorf("batch delete left %d items unprocessed after %d attempts",
		len(remaining[s.TableName]), deleteBatchAttempts)
}
