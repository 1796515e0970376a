package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"yecs-backend/internal/models"

	"github.com/google/uuid"
)

type ScoreRepo struct {
	db *sql.DB
}

func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// Create appends a score row to the user's history. Rows are never
// updated afterwards.
func (r *ScoreRepo) Create(ctx context.Context, score *models.CreditScore) error {
	components, err := json.Marshal(score.ComponentScores)
	if err != nil {
		return fmt.Errorf("encode component scores: %w", err)
	}

	score.ID = uuid.NewString()
	score.CreatedAt = time.Now().UTC()
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO credit_scores (id, user_id, yecs_score, component_scores, risk_level, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		score.ID, score.UserID, score.YECSScore, string(components), score.RiskLevel, score.CreatedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("insert credit score: %w", err)
	}
	return nil
}

// ListByUser returns the user's score history, newest first.
func (r *ScoreRepo) ListByUser(ctx context.Context, userID string) ([]models.CreditScore, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, yecs_score, component_scores, risk_level, created_at FROM credit_scores WHERE user_id = ? ORDER BY created_at DESC, rowid DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.CreditScore
	for rows.Next() {
		var (
			score      models.CreditScore
			components string
			createdAt  int64
		)
		if err := rows.Scan(&score.ID, &score.UserID, &score.YECSScore, &components, &score.RiskLevel, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(components), &score.ComponentScores); err != nil {
			return nil, fmt.Errorf("decode component scores: %w", err)
		}
		score.CreatedAt = time.UnixMilli(createdAt).UTC()
		scores = append(scores, score)
	}
	return scores, rows.Err()
}
