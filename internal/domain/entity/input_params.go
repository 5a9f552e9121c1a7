package entity

// Validation bounds for calculator input.
const (
	MinApartmentPrice     = 1_000_000
	MaxApartmentPrice     = 500_000_000
	MinDownPaymentPercent = 10
	MaxDownPaymentPercent = 100
	MinIncome             = 10_000
)

// InputParameters holds one calculation request. Currency amounts are in
// rubles; the struct has no identity and is owned by the caller.
type InputParameters struct {
	ApartmentPrice     float64
	DownPaymentPercent int
	Income             float64
	Expenses           float64
	Savings            float64
}

// ValidationResult reports every bounds violation found in the input.
// Messages are user-facing and shown to the client verbatim.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validate checks all bounds independently so that every violation is
// reported, not just the first one. It never fails: invalid input is
// communicated through the error list only.
func (p InputParameters) Validate() ValidationResult {
	var errs []string

	if p.ApartmentPrice < MinApartmentPrice {
		errs = append(errs, "Минимальная стоимость квартиры: 1 000 000 ₽")
	}
	if p.ApartmentPrice > MaxApartmentPrice {
		errs = append(errs, "Максимальная стоимость квартиры: 500 000 000 ₽")
	}
	if p.DownPaymentPercent < MinDownPaymentPercent || p.DownPaymentPercent > MaxDownPaymentPercent {
		errs = append(errs, "Первоначальный взнос должен быть от 10% до 100%")
	}
	if p.Income < MinIncome {
		errs = append(errs, "Минимальный доход: 10 000 ₽")
	}
	if p.Expenses < 0 {
		errs = append(errs, "Расходы не могут быть отрицательными")
	}
	if p.Savings < 0 {
		errs = append(errs, "Накопления не могут быть отрицательными")
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
