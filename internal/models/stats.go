package models

import "time"

// UserStats holds the rolling usage counters of one user. LastUpdated anchors
// the 7-day cliff reset applied on the login path.
type UserStats struct {
	UserID                   string    `json:"userId"`
	SevenDayTodoCreatedCount int       `json:"sevenDayTodoCreatedCount"`
	SevenDayLoginCount       int       `json:"sevenDayLoginCount"`
	LastUpdated              time.Time `json:"lastUpdated"`
}
