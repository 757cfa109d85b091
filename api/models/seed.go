package models

type SeedTeam struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ProjectName string               `json:"projectName"`
	Members     []string             `json:"members,omitempty"`
	Scores      []ScoreSubmitRequest `json:"scores,omitempty"`
}

type SeedRequest struct {
	Teams []SeedTeam `json:"teams"`
}

type SeedResponse struct {
	SeededCount int    `json:"seededCount"`
	Message     string `json:"message"`
}
