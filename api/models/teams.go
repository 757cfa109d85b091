package models

import (
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type TeamCreateRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProjectName string   `json:"projectName"`
	Members     []string `json:"members"`
}

type TeamResponse struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	ProjectName        string             `json:"projectName"`
	Members            []string           `json:"members,omitempty"`
	Scores             []ScoreResponse    `json:"scores"`
	Feedback           []FeedbackResponse `json:"feedback"`
	CombinedTotalScore int                `json:"combinedTotalScore"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	scores := make([]ScoreResponse, 0, len(t.Scores))
	for i := range t.Scores {
		scores = append(scores, TransformScoreFromStorage(&t.Scores[i]))
	}
	feedback := make([]FeedbackResponse, 0, len(t.Feedback))
	for i := range t.Feedback {
		feedback = append(feedback, TransformFeedbackFromStorage(&t.Feedback[i]))
	}
	return TeamResponse{
		ID:                 t.ID,
		Name:               t.Name,
		ProjectName:        t.ProjectName,
		Members:            t.Members,
		Scores:             scores,
		Feedback:           feedback,
		CombinedTotalScore: t.CombinedTotalScore,
	}
}
