package event

const AssessmentEventName = "assessment_submitted_events"

type AssessmentSubmittedEvent struct {
	Token  string          `json:"token"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Scores []CategoryScore `json:"scores"`
}

type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}
