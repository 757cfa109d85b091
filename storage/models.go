package storage

import "time"

// Team is the single source of truth for everything scored or said about a
// team. Scores and Feedback are embedded so every append is one document write.
type Team struct {
	ID                 string     `dynamodbav:"PK" json:"id"`
	Name               string     `dynamodbav:"Name" json:"name"`
	ProjectName        string     `dynamodbav:"ProjectName" json:"projectName"`
	Members            []string   `dynamodbav:"Members" json:"members,omitempty"`
	Scores             []Score    `dynamodbav:"Scores" json:"scores"`
	Feedback           []Feedback `dynamodbav:"Feedback" json:"feedback"`
	CombinedTotalScore int        `dynamodbav:"CombinedTotalScore" json:"combinedTotalScore"`
	// Version guards read-modify-write appends, see UpdateVersioned.
	Version int64 `dynamodbav:"Version" json:"-"`
}

// Score is one judge's evaluation of a team for a single round.
type Score struct {
	Round      string          `dynamodbav:"Round" json:"round"`
	Judge      string          `dynamodbav:"Judge" json:"judge,omitempty"`
	Categories []CategoryScore `dynamodbav:"Categories" json:"categories"`
	TotalScore int             `dynamodbav:"TotalScore" json:"totalScore"`
	Timestamp  time.Time       `dynamodbav:"Timestamp" json:"timestamp"`
}

type CategoryScore struct {
	Name  string `dynamodbav:"Name" json:"name"`
	Score int    `dynamodbav:"Score" json:"score"`
}

// Feedback is an attendee submission, either embedded in a Team or stored in
// the event-level feedback table (PK = event id, SK = composite, see feedback.go).
type Feedback struct {
	ID            string    `dynamodbav:"ID" json:"id"`
	EventID       string    `dynamodbav:"PK" json:"eventId"`
	SortKey       string    `dynamodbav:"SK" json:"-"`
	TeamID        string    `dynamodbav:"TeamID" json:"teamId,omitempty"`
	Ratings       []Rating  `dynamodbav:"Ratings" json:"ratings"`
	Reaction      string    `dynamodbav:"Reaction" json:"reaction"`
	Comment       string    `dynamodbav:"Comment" json:"comment"`
	IsAnonymous   bool      `dynamodbav:"IsAnonymous" json:"isAnonymous"`
	AttendeeName  string    `dynamodbav:"AttendeeName" json:"attendeeName,omitempty"`
	AttendeeEmail string    `dynamodbav:"AttendeeEmail" json:"attendeeEmail,omitempty"`
	Timestamp     time.Time `dynamodbav:"Timestamp" json:"timestamp"`
}

type Rating struct {
	Category string `dynamodbav:"Category" json:"category"`
	Score    int    `dynamodbav:"Score" json:"score"`
	MaxScore int    `dynamodbav:"MaxScore" json:"maxScore"`
}
