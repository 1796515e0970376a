package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"yecs-backend/internal/models"

	"github.com/google/uuid"
)

var ErrMissingUserID = errors.New("user id is required")

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Sync applies a profile document in a single transaction: the user row
// is created on first contact, personal fields are patched in place and
// the business/financials rows are upserted. Either every section lands
// or none of them do.
func (r *UserRepo) Sync(ctx context.Context, doc models.ProfileSync) error {
	if doc.FirebaseUID == "" {
		return ErrMissingUserID
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sync transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userID, err := findOrCreateUser(ctx, tx, doc.FirebaseUID)
	if err != nil {
		return err
	}

	if doc.Personal != nil && doc.Personal.HasUpdates() {
		if err := updatePersonal(ctx, tx, userID, doc.Personal); err != nil {
			return err
		}
	}
	if doc.Business != nil && doc.Business.HasUpdates() {
		if err := upsertChild(ctx, tx, "business_profiles", userID, businessColumns(doc.Business)); err != nil {
			return err
		}
	}
	if doc.Financials != nil && doc.Financials.HasUpdates() {
		if err := upsertChild(ctx, tx, "financial_data", userID, financialsColumns(doc.Financials)); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sync transaction: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	var (
		user      models.User
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, firebase_uid, email, first_name, last_name, age, created_at FROM users WHERE firebase_uid = ?",
		firebaseUID,
	).Scan(&user.ID, &user.FirebaseUID, &user.Email, &user.FirstName, &user.LastName, &user.Age, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &user, nil
}

func (r *UserRepo) GetBusinessProfile(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, business_name, industry, business_stage, revenue_projection, years_of_experience, education_level FROM business_profiles WHERE user_id = ?",
		userID,
	).Scan(&profile.ID, &profile.UserID, &profile.BusinessName, &profile.Industry, &profile.BusinessStage,
		&profile.RevenueProjection, &profile.YearsOfExperience, &profile.EducationLevel)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepo) GetFinancialData(ctx context.Context, userID string) (*models.FinancialData, error) {
	var data models.FinancialData
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, monthly_income, monthly_expenses, savings_amount, debt_amount FROM financial_data WHERE user_id = ?",
		userID,
	).Scan(&data.ID, &data.UserID, &data.MonthlyIncome, &data.MonthlyExpenses, &data.SavingsAmount, &data.DebtAmount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}

// Delete removes a user; profile, financial and score rows go with it
// through the foreign key cascade.
func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	return err
}

func findOrCreateUser(ctx context.Context, tx *sql.Tx, firebaseUID string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, "SELECT id FROM users WHERE firebase_uid = ?", firebaseUID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("find user: %w", err)
	}

	id = uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO users (id, firebase_uid, created_at) VALUES (?, ?, ?)",
		id, firebaseUID, time.Now().UTC().UnixMilli(),
	); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func updatePersonal(ctx context.Context, tx *sql.Tx, userID string, personal *models.PersonalSection) error {
	var set []string
	var args []any
	if personal.Email.Set {
		set = append(set, "email = ?")
		args = append(args, personal.Email.Value)
	}
	if personal.FirstName.Set {
		set = append(set, "first_name = ?")
		args = append(args, personal.FirstName.Value)
	}
	if personal.LastName.Set {
		set = append(set, "last_name = ?")
		args = append(args, personal.LastName.Value)
	}
	if personal.Age.Set {
		set = append(set, "age = ?")
		args = append(args, personal.Age.Value)
	}

	query := "UPDATE users SET " + strings.Join(set, ", ") + " WHERE id = ?"
	args = append(args, userID)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update personal info: %w", err)
	}
	return nil
}

// column pairs a table column with the value a sync section carries for
// it. Only columns named in the request appear, so absent fields stay
// untouched on update and NULL on insert.
type column struct {
	name  string
	value any
}

func businessColumns(business *models.BusinessSection) []column {
	var cols []column
	if business.BusinessName.Set {
		cols = append(cols, column{"business_name", business.BusinessName.Value})
	}
	if business.Industry.Set {
		cols = append(cols, column{"industry", business.Industry.Value})
	}
	if business.BusinessStage.Set {
		cols = append(cols, column{"business_stage", business.BusinessStage.Value})
	}
	if business.RevenueProjection.Set {
		cols = append(cols, column{"revenue_projection", business.RevenueProjection.Value})
	}
	if business.YearsOfExperience.Set {
		cols = append(cols, column{"years_of_experience", business.YearsOfExperience.Value})
	}
	if business.EducationLevel.Set {
		cols = append(cols, column{"education_level", business.EducationLevel.Value})
	}
	return cols
}

func financialsColumns(financials *models.FinancialsSection) []column {
	var cols []column
	if financials.MonthlyIncome.Set {
		cols = append(cols, column{"monthly_income", financials.MonthlyIncome.Value})
	}
	if financials.MonthlyExpenses.Set {
		cols = append(cols, column{"monthly_expenses", financials.MonthlyExpenses.Value})
	}
	if financials.SavingsAmount.Set {
		cols = append(cols, column{"savings_amount", financials.SavingsAmount.Value})
	}
	if financials.DebtAmount.Set {
		cols = append(cols, column{"debt_amount", financials.DebtAmount.Value})
	}
	return cols
}

func upsertChild(ctx context.Context, tx *sql.Tx, table, userID string, cols []column) error {
	var existing string
	err := tx.QueryRowContext(ctx, "SELECT id FROM "+table+" WHERE user_id = ?", userID).Scan(&existing)
	if err == sql.ErrNoRows {
		return insertChild(ctx, tx, table, userID, cols)
	}
	if err != nil {
		return fmt.Errorf("find %s row: %w", table, err)
	}
	return updateChild(ctx, tx, table, userID, cols)
}

func insertChild(ctx context.Context, tx *sql.Tx, table, userID string, cols []column) error {
	names := []string{"id", "user_id"}
	placeholders := []string{"?", "?"}
	args := []any{uuid.NewString(), userID}
	for _, col := range cols {
		names = append(names, col.name)
		placeholders = append(placeholders, "?")
		args = append(args, col.value)
	}

	query := "INSERT INTO " + table + " (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func updateChild(ctx context.Context, tx *sql.Tx, table, userID string, cols []column) error {
	set := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		set = append(set, col.name+" = ?")
		args = append(args, col.value)
	}

	query := "UPDATE " + table + " SET " + strings.Join(set, ", ") + " WHERE user_id = ?"
	args = append(args, userID)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}
