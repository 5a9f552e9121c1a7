package calculate

import "github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"

// Output carries either the ordered validation errors or the calculation
// result. Invalid input is an outcome, not an error: the caller decides
// how to present it.
type Output struct {
	Valid            bool
	ValidationErrors []string
	Result           *entity.CalculationResult
}
