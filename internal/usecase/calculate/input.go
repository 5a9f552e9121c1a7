package calculate

import "github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"

// Input represents one calculation request (DTO - Data Transfer Object)
type Input struct {
	ApartmentPrice     float64
	DownPaymentPercent int
	Income             float64
	Expenses           float64
	Savings            float64
}

func (i Input) toParams() entity.InputParameters {
	return entity.InputParameters{
		ApartmentPrice:     i.ApartmentPrice,
		DownPaymentPercent: i.DownPaymentPercent,
		Income:             i.Income,
		Expenses:           i.Expenses,
		Savings:            i.Savings,
	}
}
