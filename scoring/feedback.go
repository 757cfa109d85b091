package scoring

import (
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

// ValidateFeedback checks an attendee submission before it is recorded.
// Ratings are validated against the fixed feedback categories and MaxScore is
// forced server-side rather than trusted from the client. The candidate is not
// touched on failure.
func ValidateFeedback(candidate *storage.Feedback) error {
	if !candidate.IsAnonymous && (candidate.AttendeeName == "" || candidate.AttendeeEmail == "") {
		return ErrIdentityRequired
	}
	if !knownReaction(candidate.Reaction) {
		return &UnknownReactionError{Reaction: candidate.Reaction}
	}
	for _, r := range candidate.Ratings {
		if !knownFeedbackCategory(r.Category) {
			return &UnknownCategoryError{Category: r.Category}
		}
		if r.Score < MinRatingScore || r.Score > MaxRatingScore {
			return &RatingRangeError{Category: r.Category, Score: r.Score}
		}
	}

	for i := range candidate.Ratings {
		candidate.Ratings[i].MaxScore = MaxRatingScore
	}
	if candidate.IsAnonymous {
		candidate.AttendeeName = ""
		candidate.AttendeeEmail = ""
	}
	return nil
}
