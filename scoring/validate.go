package scoring

import (
	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

// ValidateScore checks a candidate score and fills in its derived total.
// The candidate is not touched on failure, so callers can validate before
// any write happens.
func ValidateScore(candidate *storage.Score) error {
	if _, ok := RoundIndex(candidate.Round); !ok {
		return &UnknownRoundError{Round: candidate.Round}
	}
	if len(candidate.Categories) != CategoryCount {
		return &CategoryCountError{Got: len(candidate.Categories)}
	}

	seen := make(map[string]bool, CategoryCount)
	total := 0
	for _, c := range candidate.Categories {
		if !knownCategory(c.Name) {
			return &UnknownCategoryError{Category: c.Name}
		}
		if seen[c.Name] {
			return &DuplicateCategoryError{Category: c.Name}
		}
		seen[c.Name] = true

		if c.Score < 0 || c.Score > MaxCategoryScore {
			return &CategoryRangeError{Category: c.Name, Score: c.Score}
		}
		total += c.Score
	}

	candidate.TotalScore = total
	return nil
}

// CombinedTotal is the full-history sum over every score the team holds,
// across all rounds and judges. Always a full resum, never incremental.
func CombinedTotal(scores []storage.Score) int {
	total := 0
	for _, s := range scores {
		total += s.TotalScore
	}
	return total
}
