package models

import "time"

type CreditScore struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	YECSScore       int            `json:"yecs_score"`
	ComponentScores map[string]int `json:"component_scores"`
	RiskLevel       string         `json:"risk_level"`
	CreatedAt       time.Time      `json:"created_at"`
}
