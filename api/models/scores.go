package models

import (
	"time"

	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type CategoryScoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type ScoreSubmitRequest struct {
	Round      string               `json:"round"`
	Judge      string               `json:"judge"`
	Categories []CategoryScoreEntry `json:"categories"`
}

type ScoreResponse struct {
	Round      string               `json:"round"`
	Judge      string               `json:"judge,omitempty"`
	Categories []CategoryScoreEntry `json:"categories"`
	TotalScore int                  `json:"totalScore"`
	Timestamp  time.Time            `json:"timestamp"`
}

// TransformScoreToStorage builds the candidate the scoring validator checks.
// TotalScore is left for the validator to derive.
func TransformScoreToStorage(req *ScoreSubmitRequest, now time.Time) storage.Score {
	categories := make([]storage.CategoryScore, 0, len(req.Categories))
	for _, c := range req.Categories {
		categories = append(categories, storage.CategoryScore{Name: c.Name, Score: c.Score})
	}
	return storage.Score{
		Round:      req.Round,
		Judge:      req.Judge,
		Categories: categories,
		Timestamp:  now,
	}
}

func TransformScoreFromStorage(s *storage.Score) ScoreResponse {
	categories := make([]CategoryScoreEntry, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, CategoryScoreEntry{Name: c.Name, Score: c.Score})
	}
	return ScoreResponse{
		Round:      s.Round,
		Judge:      s.Judge,
		Categories: categories,
		TotalScore: s.TotalScore,
		Timestamp:  s.Timestamp,
	}
}
