package scoring

// Rounds is the judging order. A leaderboard round selects the prefix of this
// sequence ending at that round.
var Rounds = []string{"Round 1", "Round 2", "Final"}

// Categories are the five judged dimensions, each scored 0-20.
var Categories = []string{
	"Feasibility",
	"Originality",
	"Completeness",
	"Functionality",
	"Presentation",
}

const (
	CategoryCount    = 5
	MaxCategoryScore = 20
	// MaxRoundScore bounds a single judge's total and therefore a round average.
	MaxRoundScore = CategoryCount * MaxCategoryScore
)

// FeedbackCategories are the attendee rating dimensions, each scored 1-5.
var FeedbackCategories = []string{
	"Organization",
	"Content",
	"Venue",
	"Mentorship",
	"Overall Experience",
}

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Reactions is the closed set of overall-experience reactions.
var Reactions = []string{"excited", "happy", "neutral", "disappointed", "frustrated"}

// RoundIndex reports the position of round in the judging order.
func RoundIndex(round string) (int, bool) {
	for i, r := range Rounds {
		if r == round {
			return i, true
		}
	}
	return 0, false
}

func knownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

func knownFeedbackCategory(name string) bool {
	for _, c := range FeedbackCategories {
		if c == name {
			return true
		}
	}
	return false
}

func knownReaction(reaction string) bool {
	for _, r := range Reactions {
		if r == reaction {
			return true
		}
	}
	return false
}
