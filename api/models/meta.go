package models

// ConfigResponse exposes the fixed domain constants so clients treat them as
// configuration instead of hard-coding them.
type ConfigResponse struct {
	Rounds             []string `json:"rounds"`
	Categories         []string `json:"categories"`
	MaxCategoryScore   int      `json:"maxCategoryScore"`
	FeedbackCategories []string `json:"feedbackCategories"`
	MaxRatingScore     int      `json:"maxRatingScore"`
	Reactions          []string `json:"reactions"`
}
