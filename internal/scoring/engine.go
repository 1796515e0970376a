package scoring

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	baseScore       = 300.0
	maxScore        = 850
	residualRange   = 150
	businessWeight  = 1.25
	financialWeight = 0.9
)

// viableStages are the business stages that earn viability points.
var viableStages = map[string]bool{
	"MVP Ready":          true,
	"Early Customers":    true,
	"Revenue Generating": true,
}

type BusinessInput struct {
	RevenueProjection float64 `json:"revenueProjection"`
	YearsExperience   float64 `json:"yearsExperience"`
	BusinessStage     string  `json:"businessStage"`
}

type FinancialInput struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	SavingsAmount   float64 `json:"savingsAmount"`
	DebtAmount      float64 `json:"debtAmount"`
}

type Input struct {
	Business   BusinessInput  `json:"business"`
	Financials FinancialInput `json:"financials"`
}

type Result struct {
	YECSScore       int            `json:"yecs_score"`
	ComponentScores map[string]int `json:"component_scores"`
	RiskLevel       string         `json:"risk_level"`
}

// Engine computes YECS scores from submitted documents alone. It keeps
// no state and never touches storage.
type Engine struct {
	residual func() (int64, error)
}

type Option func(*Engine)

// WithResidual replaces the random residual source. Tests use it to pin
// the score.
func WithResidual(fn func() (int64, error)) Option {
	return func(e *Engine) {
		e.residual = fn
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{residual: secureResidual}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute scores a document starting from a 300 point base. Business
// viability contributes up to 100 raw points weighted 1.25, financial
// management up to 100 weighted 0.9, and a random residual in [0, 150)
// stands in for unmodeled factors. The total is floored to whole points
// and capped at 850. Repeated calls with the same input give different
// scores because of the residual.
func (e *Engine) Compute(input Input) (Result, error) {
	score := baseScore
	components := map[string]int{}

	business := 0
	if input.Business.RevenueProjection > 50000 {
		business += 40
	}
	if input.Business.YearsExperience > 2 {
		business += 35
	}
	if viableStages[input.Business.BusinessStage] {
		business += 25
	}
	components["business_viability"] = business
	score += float64(business) * businessWeight

	financial := 0
	if input.Financials.MonthlyIncome > 0 {
		if input.Financials.MonthlyIncome-input.Financials.MonthlyExpenses > 500 {
			financial += 50
		}
		if input.Financials.MonthlyExpenses > 0 && input.Financials.SavingsAmount > input.Financials.MonthlyExpenses*3 {
			financial += 50
		}
	}
	components["financial_management"] = financial
	score += float64(financial) * financialWeight

	residual, err := e.residual()
	if err != nil {
		return Result{}, fmt.Errorf("draw residual: %w", err)
	}
	score += float64(residual)

	final := int(score)
	if final > maxScore {
		final = maxScore
	}

	return Result{
		YECSScore:       final,
		ComponentScores: components,
		RiskLevel:       riskLevel(final),
	}, nil
}

func riskLevel(score int) string {
	switch {
	case score > 700:
		return "Low"
	case score > 600:
		return "Medium"
	default:
		return "High"
	}
}

func secureResidual() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(residualRange))
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}
