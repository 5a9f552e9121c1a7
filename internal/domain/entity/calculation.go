package entity

import "math"

// ScenarioType classifies the user's savings situation.
type ScenarioType string

const (
	// ScenarioAlreadySaved means current savings already cover the goal.
	ScenarioAlreadySaved ScenarioType = "already_saved"
	// ScenarioNoSavings means the monthly balance is zero or negative.
	ScenarioNoSavings ScenarioType = "no_savings"
	// ScenarioNormal means the goal is reachable at the current pace.
	ScenarioNormal ScenarioType = "normal"
)

// TermCategory buckets the projected months-to-goal. Assigned only when
// the scenario is ScenarioNormal.
type TermCategory string

const (
	TermNormal   TermCategory = "normal"
	TermLong     TermCategory = "long"
	TermVeryLong TermCategory = "very_long"
)

// MonthsUnreachable is the sentinel projection for a goal that can never
// be reached at the given rate.
var MonthsUnreachable = math.Inf(1)

// Savings-rate boosts for the two alternative projections, in rubles.
const (
	BoostSmall = 50_000
	BoostLarge = 100_000
)

// CalculationResult is the immutable outcome of one calculation. Month
// projections are exact real numbers; rounding happens only at display
// or reporting time, via ResultMonths.
type CalculationResult struct {
	Target         float64
	Remaining      float64
	MonthlySavings float64

	MonthsCurrent  float64
	MonthsPlus50K  float64
	MonthsPlus100K float64

	Scenario     ScenarioType
	TermCategory TermCategory

	// CushionMonths is how long current savings cover expenses,
	// rounded to one decimal.
	CushionMonths float64

	// Input carries the original parameters for downstream reporting.
	Input InputParameters
}

// Calculate derives the full result from validated input. It is pure and
// total: callers are expected to run Validate first, and garbage in means
// garbage out, never a panic.
func Calculate(p InputParameters) CalculationResult {
	target := p.ApartmentPrice * float64(p.DownPaymentPercent) / 100
	remaining := math.Max(0, target-p.Savings)
	monthlySavings := p.Income - p.Expenses

	scenario := ScenarioNormal
	switch {
	case p.Savings >= target:
		// Takes priority even when the monthly balance is negative.
		scenario = ScenarioAlreadySaved
	case monthlySavings <= 0:
		scenario = ScenarioNoSavings
	}

	monthsCurrent := monthsToGoal(remaining, monthlySavings)

	var term TermCategory
	if scenario == ScenarioNormal {
		term = termCategoryFor(p.DownPaymentPercent, monthsCurrent)
	}

	return CalculationResult{
		Target:         target,
		Remaining:      remaining,
		MonthlySavings: monthlySavings,
		MonthsCurrent:  monthsCurrent,
		MonthsPlus50K:  monthsToGoal(remaining, monthlySavings+BoostSmall),
		MonthsPlus100K: monthsToGoal(remaining, monthlySavings+BoostLarge),
		Scenario:       scenario,
		TermCategory:   term,
		CushionMonths:  cushionMonths(p.Savings, p.Expenses),
		Input:          p,
	}
}

// ResultMonths is the reporting form of the current projection: -1 when
// the goal is unreachable, otherwise the ceiling of the exact value so
// that partial months round toward the conservative side.
func (r CalculationResult) ResultMonths() int {
	if math.IsInf(r.MonthsCurrent, 1) {
		return -1
	}
	return int(math.Ceil(r.MonthsCurrent))
}

// monthsToGoal returns the exact months needed to close remaining at the
// given monthly rate.
func monthsToGoal(remaining, rate float64) float64 {
	if remaining <= 0 {
		return 0
	}
	if rate <= 0 {
		return MonthsUnreachable
	}
	return remaining / rate
}

// termCategoryFor buckets the current projection. Thresholds scale with
// the down-payment percent: a large down payment is a long-horizon goal
// by nature, so its "long" starts later.
func termCategoryFor(downPaymentPercent int, months float64) TermCategory {
	var long, veryLong float64
	switch {
	case downPaymentPercent < 50:
		long, veryLong = 60, 120
	case downPaymentPercent < 65:
		long, veryLong = 72, 144
	default:
		long, veryLong = 84, 180
	}

	switch {
	case months > veryLong:
		return TermVeryLong
	case months > long:
		return TermLong
	default:
		return TermNormal
	}
}

func cushionMonths(savings, expenses float64) float64 {
	if expenses <= 0 {
		return 0
	}
	return math.Round(savings/expenses*10) / 10
}
