package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/hackday-labs/hackathon-scoreboard/storage"
)

// CategoryAverage is the rounded mean of one category across the judges who
// scored a round.
type CategoryAverage struct {
	Name    string
	Average int
}

// RoundAverage holds the per-category and total averages for one round of one
// team. Absence of judge scores is reported separately so a genuine zero stays
// distinguishable from "not scored yet".
type RoundAverage struct {
	Round      string
	Categories []CategoryAverage
	Total      int
}

// Standing is one leaderboard row: the team with its selected-round averages
// and the cumulative figure the ranking sorts on.
type Standing struct {
	Team       *storage.Team
	Round      *RoundAverage // nil when the team has no scores for the round
	Cumulative int
	Max        int
}

// roundHalfUp matches the rounding the scoreboard has always displayed
// (Math.round in the original UI): halves round up for the non-negative
// sums that occur here.
func roundHalfUp(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}

// AverageForRound averages the team's judge scores for one round. The second
// return is false when no judge has scored that round.
func AverageForRound(team *storage.Team, round string) (*RoundAverage, bool) {
	var roundScores []storage.Score
	for _, s := range team.Scores {
		if s.Round == round {
			roundScores = append(roundScores, s)
		}
	}
	if len(roundScores) == 0 {
		return nil, false
	}

	avg := &RoundAverage{Round: round}
	for _, name := range Categories {
		sum := 0
		for _, s := range roundScores {
			for _, c := range s.Categories {
				if c.Name == name {
					sum += c.Score
				}
			}
		}
		avg.Categories = append(avg.Categories, CategoryAverage{
			Name:    name,
			Average: roundHalfUp(sum, len(roundScores)),
		})
	}

	totalSum := 0
	for _, s := range roundScores {
		totalSum += s.TotalScore
	}
	avg.Total = roundHalfUp(totalSum, len(roundScores))
	return avg, true
}

// CumulativeScore sums the round average totals over the prefix of the round
// order ending at uptoRound. Rounds nobody scored contribute 0 so partial
// participation never disqualifies a team. Unknown rounds yield 0.
func CumulativeScore(team *storage.Team, uptoRound string) int {
	idx, ok := RoundIndex(uptoRound)
	if !ok {
		return 0
	}

	total := 0
	for i := 0; i <= idx; i++ {
		if avg, ok := AverageForRound(team, Rounds[i]); ok {
			total += avg.Total
		}
	}
	return total
}

// MaxPossible is the ceiling for a cumulative score over the prefix ending at
// uptoRound, used for "X / max" display.
func MaxPossible(uptoRound string) int {
	idx, ok := RoundIndex(uptoRound)
	if !ok {
		return 0
	}
	return MaxRoundScore * (idx + 1)
}

// Rank orders teams by cumulative score for the prefix ending at uptoRound.
// Ties break by team name (case-insensitive), then by id, so the order is
// deterministic rather than whatever the sort happens to preserve.
func Rank(teams []*storage.Team, uptoRound string) []Standing {
	standings := make([]Standing, 0, len(teams))
	max := MaxPossible(uptoRound)
	for _, t := range teams {
		s := Standing{
			Team:       t,
			Cumulative: CumulativeScore(t, uptoRound),
			Max:        max,
		}
		if avg, ok := AverageForRound(t, uptoRound); ok {
			s.Round = avg
		}
		standings = append(standings, s)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Cumulative != b.Cumulative {
			return a.Cumulative > b.Cumulative
		}
		an, bn := strings.ToLower(a.Team.Name), strings.ToLower(b.Team.Name)
		if an != bn {
			return an < bn
		}
		return a.Team.ID < b.Team.ID
	})
	return standings
}
