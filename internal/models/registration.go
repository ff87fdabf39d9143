package models

import (
	"time"
)

// TimeLayout is the UTC instant format used for timestamp and createdAt.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Registration is an attendee registration for the community day.
// Name and Role are stored as submitted and may hold any JSON value.
type Registration struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Name      any    `json:"name" dynamodbav:"name"`
	Role      any    `json:"role" dynamodbav:"role"`
	Timestamp string `json:"timestamp" dynamodbav:"timestamp"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// FormatTime renders t in TimeLayout after converting to UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
