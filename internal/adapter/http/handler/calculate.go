package handler

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/calculate"
)

// CalculateUseCase interface allows mocking the calculation flow in tests
type CalculateUseCase interface {
	Execute(ctx context.Context, input calculate.Input) (*calculate.Output, error)
}

// CalculateHandler serves the server-side variant of the down payment
// calculator so bots and tests can reuse the exact widget math.
type CalculateHandler struct {
	useCase CalculateUseCase
}

func NewCalculateHandler(useCase CalculateUseCase) *CalculateHandler {
	return &CalculateHandler{useCase: useCase}
}

type calculateRequest struct {
	ApartmentPrice     float64 `json:"apartment_price"`
	DownPaymentPercent int     `json:"down_payment_percent"`
	Income             float64 `json:"income"`
	Expenses           float64 `json:"expenses"`
	Savings            float64 `json:"savings"`
}

type calculateResponse struct {
	Target         float64 `json:"target"`
	Remaining      float64 `json:"remaining"`
	MonthlySavings float64 `json:"monthly_savings"`
	MonthsCurrent  float64 `json:"months_current"`
	MonthsPlus50K  float64 `json:"months_plus_50k"`
	MonthsPlus100K float64 `json:"months_plus_100k"`
	ResultMonths   int     `json:"result_months"`
	ScenarioType   string  `json:"scenario_type"`
	TermCategory   string  `json:"term_category,omitempty"`
	CushionMonths  float64 `json:"cushion_months"`
}

func (h *CalculateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.useCase.Execute(r.Context(), calculate.Input{
		ApartmentPrice:     req.ApartmentPrice,
		DownPaymentPercent: req.DownPaymentPercent,
		Income:             req.Income,
		Expenses:           req.Expenses,
		Savings:            req.Savings,
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !output.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": output.ValidationErrors,
		})
		return
	}

	res := output.Result
	writeJSON(w, http.StatusOK, calculateResponse{
		Target:         res.Target,
		Remaining:      res.Remaining,
		MonthlySavings: res.MonthlySavings,
		MonthsCurrent:  monthsJSON(res.MonthsCurrent),
		MonthsPlus50K:  monthsJSON(res.MonthsPlus50K),
		MonthsPlus100K: monthsJSON(res.MonthsPlus100K),
		ResultMonths:   res.ResultMonths(),
		ScenarioType:   string(res.Scenario),
		TermCategory:   string(res.TermCategory),
		CushionMonths:  res.CushionMonths,
	})
}

// monthsJSON maps the unreachable-goal sentinel to -1 since JSON has no
// representation for infinity.
func monthsJSON(months float64) float64 {
	if math.IsInf(months, 1) {
		return -1
	}
	return months
}
