package models

import (
	"time"

	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

type RatingEntry struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore,omitempty"`
}

type FeedbackSubmitRequest struct {
	EventID       string        `json:"eventId"`
	TeamID        string        `json:"teamId,omitempty"`
	Ratings       []RatingEntry `json:"ratings"`
	Reaction      string        `json:"reaction"`
	Comment       string        `json:"comment"`
	IsAnonymous   bool          `json:"isAnonymous"`
	AttendeeName  string        `json:"attendeeName,omitempty"`
	AttendeeEmail string        `json:"attendeeEmail,omitempty"`
}

type FeedbackResponse struct {
	ID            string        `json:"id,omitempty"`
	EventID       string        `json:"eventId,omitempty"`
	TeamID        string        `json:"teamId,omitempty"`
	Ratings       []RatingEntry `json:"ratings"`
	Reaction      string        `json:"reaction"`
	Comment       string        `json:"comment"`
	IsAnonymous   bool          `json:"isAnonymous"`
	AttendeeName  string        `json:"attendeeName,omitempty"`
	AttendeeEmail string        `json:"attendeeEmail,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

func TransformFeedbackToStorage(req *FeedbackSubmitRequest, id string, now time.Time) storage.Feedback {
	ratings := make([]storage.Rating, 0, len(req.Ratings))
	for _, r := range req.Ratings {
		ratings = append(ratings, storage.Rating{Category: r.Category, Score: r.Score, MaxScore: r.MaxScore})
	}
	return storage.Feedback{
		ID:            id,
		EventID:       req.EventID,
		TeamID:        req.TeamID,
		Ratings:       ratings,
		Reaction:      req.Reaction,
		Comment:       req.Comment,
		IsAnonymous:   req.IsAnonymous,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		Timestamp:     now,
	}
}

func TransformFeedbackFromStorage(f *storage.Feedback) FeedbackResponse {
	ratings := make([]RatingEntry, 0, len(f.Ratings))
	for _, r := range f.Ratings {
		ratings = append(ratings, RatingEntry{Category: r.Category, Score: r.Score, MaxScore: r.MaxScore})
	}
	return FeedbackResponse{
		ID:            f.ID,
		EventID:       f.EventID,
		TeamID:        f.TeamID,
		Ratings:       ratings,
		Reaction:      f.Reaction,
		Comment:       f.Comment,
		IsAnonymous:   f.IsAnonymous,
		AttendeeName:  f.AttendeeName,
		AttendeeEmail: f.AttendeeEmail,
		Timestamp:     f.Timestamp,
	}
}
