package models

import (
	"github.com/hackday-labs/hackathon-scoreboard/scoring"
)

type CategoryAverageEntry struct {
	Name    string `json:"name"`
	Average int    `json:"average"`
}

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	ProjectName string `json:"projectName"`
	// HasRoundScore distinguishes a genuine zero from "no judge has scored
	// this round yet"; CategoryAverages and RoundScore are only meaningful
	// when it is true.
	HasRoundScore    bool                   `json:"hasRoundScore"`
	CategoryAverages []CategoryAverageEntry `json:"categoryAverages,omitempty"`
	RoundScore       int                    `json:"roundScore"`
	CumulativeScore  int                    `json:"cumulativeScore"`
}

type LeaderboardResponse struct {
	Round       string             `json:"round"`
	MaxPossible int                `json:"maxPossible"`
	Entries     []LeaderboardEntry `json:"entries"`
}

func TransformStandings(round string, standings []scoring.Standing) LeaderboardResponse {
	response := LeaderboardResponse{
		Round:       round,
		MaxPossible: scoring.MaxPossible(round),
		Entries:     make([]LeaderboardEntry, 0, len(standings)),
	}
	for i, s := range standings {
		entry := LeaderboardEntry{
			Rank:            i + 1,
			TeamID:          s.Team.ID,
			TeamName:        s.Team.Name,
			ProjectName:     s.Team.ProjectName,
			CumulativeScore: s.Cumulative,
		}
		if s.Round != nil {
			entry.HasRoundScore = true
			entry.RoundScore = s.Round.Total
			for _, c := range s.Round.Categories {
				entry.CategoryAverages = append(entry.CategoryAverages, CategoryAverageEntry{
					Name:    c.Name,
					Average: c.Average,
				})
			}
		}
		response.Entries = append(response.Entries, entry)
	}
	return response
}
